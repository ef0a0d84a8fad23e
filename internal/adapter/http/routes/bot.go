package routes

import (
	"pedezap/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBot = "/bot"

func addBotRoutes(rg *gin.RouterGroup, botHandler *handlers.BotHandler) {
	bot := rg.Group(PathBot)
	{
		// Webhook chamado pelo conector do canal de mensagens.
		bot.POST("/messages", botHandler.HandleMessage)
	}
}
