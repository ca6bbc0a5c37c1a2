package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	_ "mock-interview-backend/docs"
	"mock-interview-backend/initializers"
)

// @title Mock Interview API
// @version 1.0
// @description Голосовое пробное интервью по резюме кандидата
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mock-interview",
	Short: "Сервис пробного интервью",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Выполнить миграции БД и выйти",
	Run: func(cmd *cobra.Command, args []string) {
		initializers.InitMigration()
		log.Info("миграции выполнены")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
