// Основной пакет приложения Velostore. Отвечает за запуск приложения, инициализацию базы данных, миграцию моделей и запуск основного сервера.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/config"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dao"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/gormlogger"
)

var version string = "DEV"

var models = []any{&dao.Content{}, &dao.Product{}}

// Пример запуска: go run main.go --noMigration --trace
func main() {
	paramQueries := flag.Bool("paramQueries", true, "Mask queries params in log")
	noMigration := flag.Bool("noMigration", false, "Turn off DB migration")
	trace := flag.Bool("trace", false, "Verbose logs and sql trace")
	flag.Parse()

	PrintBanner()

	cfg := config.ReadConfig()

	if *trace {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Set prod log format
	if version != "DEV" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})))
	}

	slog.Info("Velostore start.")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: false, // disables implicit prepared statement usage
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.NewGormLogger(slog.Default(), time.Second*4, *paramQueries),
	})
	if err != nil {
		slog.Error("Fail init DB connection", "err", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Fail set settings to conn pool", "err", err)
		os.Exit(1)
	}
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(time.Minute * 15)

	if !*noMigration {
		slog.Info("Migrate models")
		if err := db.AutoMigrate(models...); err != nil {
			slog.Error("Fail migrate models", "err", err)
			os.Exit(1)
		}
	}

	if cfg.DemoSeed {
		seedDemoCatalog(db)
	}

	velostore.Server(db, cfg, version)
}

// seedDemoCatalog наполняет пустой каталог демонстрационными товарами.
func seedDemoCatalog(db *gorm.DB) {
	var count int64
	if err := db.Model(&dao.Product{}).Count(&count).Error; err != nil {
		slog.Error("Fail count products in DB", "err", err)
		os.Exit(1)
	}
	if count > 0 {
		return
	}

	slog.Info("Seeding demo catalog")
	demo := []dao.Product{
		{Name: "Городской электровелосипед Metro 500", Slug: "metro-500", Description: "Легкая рама, запас хода 60 км", Price: 8990000, Tags: []string{"city"}, Published: true},
		{Name: "Горный электровелосипед Ridge X", Slug: "ridge-x", Description: "Полная подвеска, мотор 750 Вт", Price: 15990000, Tags: []string{"mountain"}, Published: true},
		{Name: "Складной электровелосипед Pocket", Slug: "pocket", Description: "Складывается за 10 секунд", Price: 6490000, Tags: []string{"folding", "city"}, Published: true},
	}
	for i := range demo {
		if err := dao.CreateProduct(db, &demo[i]); err != nil {
			slog.Error("Fail seed product", "slug", demo[i].Slug, "err", err)
		}
	}
}

// PrintBanner выводит заголовок приложения с версией. Не принимает параметров и не возвращает значений.
func PrintBanner() {
	banner := `
__     __   _           _
\ \   / /__| | ___  ___| |_ ___  _ __ ___
 \ \ / / _ \ |/ _ \/ __| __/ _ \| '__/ _ \
  \ V /  __/ | (_) \__ \ || (_) | | |  __/
   \_/ \___|_|\___/|___/\__\___/|_|  \___| %s
E-bike storefront content management
%s
----------------------------------------------------
`
	colorReset := "\033[0m"

	colorYellow := "\033[33m"
	colorBlue := "\033[34m"

	formattedVersion := version
	if version == "DEV" {
		formattedVersion = colorYellow + version + colorReset
	}

	fmt.Printf(banner, formattedVersion, colorBlue+"https://aisa.ru"+colorReset)
}
