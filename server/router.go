package server

import (
	"net/http"
	"time"

	httpHandler "enthro-backend/interfaces/http"
	"enthro-backend/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	accountHandler httpHandler.IAccountHandler,
	channelHandler httpHandler.IChannelHandler,
	streamHandler httpHandler.IStreamHandler,
	videoHandler httpHandler.IVideoHandler,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://enthro.xyz", "https://app.enthro.xyz", "http://localhost:5173", "http://localhost:4173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Queries are public; the web client reads the catalog without a wallet.
	router.GET("/streams", streamHandler.GetStreams)
	router.GET("/streams/:id", streamHandler.GetStream)
	router.GET("/videos", videoHandler.GetVideos)
	router.GET("/videos/:id", videoHandler.GetVideo)
	router.GET("/accounts/:id", accountHandler.GetAccount)
	router.GET("/channels", channelHandler.GetChannels)
	router.GET("/channels/:id", channelHandler.GetChannel)

	// Mutations sit behind the bearer guard; with no secret configured the
	// guard passes everything through.
	mutations := router.Group("")
	mutations.Use(middleware.Auth(secretKey))

	mutations.POST("/create-account", accountHandler.CreateAccount)
	mutations.POST("/create-channel", channelHandler.CreateChannel)
	mutations.POST("/create-stream", streamHandler.CreateStream)
	mutations.POST("/upload-video", videoHandler.UploadVideo)

	mutations.POST("/follow-account/:streamer/:viewer", accountHandler.FollowAccount)
	mutations.POST("/unfollow-account/:streamer/:viewer", accountHandler.UnfollowAccount)

	mutations.POST("/start-stream/:streamAddress", streamHandler.StartStream)
	mutations.POST("/end-stream/:streamAddress", streamHandler.EndStream)
	mutations.POST("/join-stream/:viewer/:streamAddress", streamHandler.JoinStream)
	mutations.POST("/like-stream/:viewer/:streamAddress", streamHandler.LikeStream)
	mutations.POST("/dislike-stream/:viewer/:streamAddress", streamHandler.DislikeStream)

	mutations.POST("/watch-video/:viewer/:videoAddress", videoHandler.WatchVideo)
	mutations.POST("/like-video/:viewer/:videoAddress", videoHandler.LikeVideo)
	mutations.POST("/dislike-video/:viewer/:videoAddress", videoHandler.DislikeVideo)

	return router
}
