package config

// defaultConfigYAML 嵌入的默认配置，外部配置文件与环境变量可覆盖其中任意项
const defaultConfigYAML = `server:
  port: ":8080"
  mode: "debug"
  base_url: "http://localhost:8080"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "cashflow"
  password: "cashflow"
  dbname: "cashflow"
  charset: "utf8mb4"
  max_idle_conns: 10
  max_open_conns: 100

jwt:
  secret: "change-me-in-production"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 465
  username: ""
  password: ""
  from: "现金流记账"
`
