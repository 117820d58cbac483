package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/innercore-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("innercore")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "config file")
	flag.Parse()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}

	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS innercore`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO innercore").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.Session{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Session{}).
		AddForeignKey("account_id", "accounts(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}

	fmt.Println("index mongo collections")
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
