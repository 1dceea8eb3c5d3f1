package main

import (
	"fmt"
	"github.com/QuangTung97/campaign-ledger/config"
	"github.com/QuangTung97/campaign-ledger/pkg/migration"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	conf := config.Load()
	cmd := migration.MigrateCommand(conf.MySQL.MigrateURL())
	err := cmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
	}
}
