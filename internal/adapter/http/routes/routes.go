package routes

import (
	"log"
	"os"
	"strconv"

	_ "vetpoint/docs" // This will be auto-generated
	"vetpoint/internal/adapter/http/handlers"
	repository2 "vetpoint/internal/adapter/persistence/repository"
	"vetpoint/internal/infrastructure/database"
	"vetpoint/internal/infrastructure/payments"
	"vetpoint/internal/usecase"
	"vetpoint/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo)
	transitionUseCase := usecase.NewTransitionUseCase(appointmentUseCase)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, appointmentRepo, paymentGateway, transitionUseCase)
	reconciliationUseCase := usecase.NewReconciliationUseCase(paymentUseCase, appointmentUseCase, transitionUseCase)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase, transitionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, reconciliationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, appointmentHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
