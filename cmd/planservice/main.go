/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/stripslab/planner/internal/planstore"
	"github.com/stripslab/planner/internal/service"
)

func main() {
	cfg, err := service.Load()
	if err != nil {
		log.Fatalf("could not load planner service config: %s", err.Error())
	}

	logger := service.NewLogger()

	store, err := planstore.Open(cfg.StoragePath, logger)
	if err != nil {
		log.Fatalf("could not open plan store: %s", err.Error())
	}
	defer func() {
		_ = store.Close()
	}()

	app := service.NewApp(cfg, logger, store)
	app.ConfigureRoutes()
	app.Run()
}
