package main

import (
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

type App struct {
	server    *gin.Engine
	consumers []events.Consumer
	cron      *cron.Cron
}
