package bootstrap

import (
	"time"

	"kisaan-academy-be/internal/config"
	"kisaan-academy-be/internal/controller"
	"kisaan-academy-be/internal/pkg/logger"
	"kisaan-academy-be/internal/repository/unitofwork"
	"kisaan-academy-be/internal/service"
	"kisaan-academy-be/pkg/assistant/compose"
	"kisaan-academy-be/pkg/assistant/facts"
	"kisaan-academy-be/pkg/chatbot"
	"kisaan-academy-be/pkg/commodity"
	"kisaan-academy-be/pkg/weatherapi"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController         controller.IUserController
	CourseController       controller.ICourseController
	MarketPriceController  controller.IMarketPriceController
	WeatherAlertController controller.IWeatherAlertController
	PestAlertController    controller.IPestAlertController
	WikiController         controller.IWikiController
	ChatController         controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External Collaborators
	geminiClient := chatbot.NewGeminiClient(cfg.Keys.GoogleGemini)
	weatherClient := weatherapi.NewClient(
		cfg.Keys.WeatherAPI,
		time.Duration(cfg.Cache.WeatherTTLMinutes)*time.Minute,
	)
	commodityClient := commodity.NewClient(
		cfg.Keys.RapidAPI,
		time.Duration(cfg.Cache.CommodityTTLMinutes)*time.Minute,
	)

	// 4. Assistant Pipeline
	priceProvider := facts.NewPriceProvider(commodityClient, uowFactory, sysLogger)
	pestProvider := facts.NewPestProvider(uowFactory, sysLogger)
	weatherProvider := facts.NewWeatherProvider(weatherClient, uowFactory, sysLogger)
	composer := compose.NewComposer(
		geminiClient,
		priceProvider,
		pestProvider,
		weatherProvider,
		sysLogger,
	)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, sysLogger)

	userService := service.NewUserService(uowFactory)
	courseService := service.NewCourseService(uowFactory)
	marketService := service.NewMarketService(uowFactory, commodityClient, sysLogger)
	weatherAlertService := service.NewWeatherAlertService(uowFactory, weatherClient, publisherService, sysLogger)
	pestAlertService := service.NewPestAlertService(uowFactory)
	wikiService := service.NewWikiService(uowFactory)
	chatService := service.NewChatService(uowFactory, composer, sysLogger)

	// 6. Controllers
	return &Container{
		UserController:         controller.NewUserController(userService),
		CourseController:       controller.NewCourseController(courseService),
		MarketPriceController:  controller.NewMarketPriceController(marketService),
		WeatherAlertController: controller.NewWeatherAlertController(weatherAlertService),
		PestAlertController:    controller.NewPestAlertController(pestAlertService),
		WikiController:         controller.NewWikiController(wikiService),
		ChatController:         controller.NewChatController(chatService),

		ConsumerService: consumerService,
	}
}
