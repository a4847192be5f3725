package main

import (
	"fmt"

	"terminal-terrace/enroll-service/config"
	"terminal-terrace/enroll-service/internal/database"
	"terminal-terrace/enroll-service/internal/route"
)

func main() {
	config.MustLoad("config.yaml")
	database.InitDatabase()

	r := route.SetupRouter(database.PostgresDB, database.RedisDB)

	r.Run(fmt.Sprintf(":%d", config.Conf.Server.Port))
}
