package bootstrap

import (
	"log"

	"cinimagic-be/internal/config"
	"cinimagic-be/internal/controller"
	"cinimagic-be/internal/pkg/logger"
	"cinimagic-be/internal/repository/memory"
	"cinimagic-be/internal/repository/unitofwork"
	"cinimagic-be/internal/service"
	"cinimagic-be/pkg/chatbot"
	"cinimagic-be/pkg/navigation"
	"cinimagic-be/pkg/recommender"
	"cinimagic-be/pkg/tmdb"

	pktNats "cinimagic-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const warmHomeCacheTopic = "home.cache.warm"

type Container struct {
	// Controllers
	AuthController           controller.IAuthController
	NavigationController     controller.INavigationController
	RecommendationController controller.IRecommendationController
	HomeController           controller.IHomeController
	ChatbotController        controller.IChatbotController

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

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Domain Components
	machine := navigation.NewMachine()
	sessionRepo := memory.NewSessionRepository()

	// The similarity index is loaded once at startup. A missing or corrupt
	// artifact leaves the service up with recommendations disabled.
	index, err := recommender.Load(cfg.Recommender.ArtifactPath)
	if err != nil {
		log.Printf("[WARN] Similarity artifact unavailable, recommendations disabled: %v", err)
		index = nil
	} else {
		log.Printf("[INFO] Similarity index loaded: %d titles", len(index.Titles()))
	}

	llmClient := chatbot.NewClient(cfg.Keys.GoogleGemini)
	tmdbClient := tmdb.NewClient(cfg.Keys.TMDB, sysLogger)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, warmHomeCacheTopic)
	consumerService := service.NewConsumerService(pubSub, warmHomeCacheTopic, tmdbClient)

	authService := service.NewAuthService(uowFactory, sessionRepo, machine, publisherService, natsPub, sysLogger)
	navigationService := service.NewNavigationService(sessionRepo, machine)
	recommendationService := service.NewRecommendationService(sessionRepo, index, tmdbClient)
	homeService := service.NewHomeService(sessionRepo, tmdbClient)
	chatbotService := service.NewChatbotService(sessionRepo, llmClient, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:           controller.NewAuthController(authService),
		NavigationController:     controller.NewNavigationController(navigationService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		HomeController:           controller.NewHomeController(homeService),
		ChatbotController:        controller.NewChatbotController(chatbotService),

		ConsumerService: consumerService,
	}
}
