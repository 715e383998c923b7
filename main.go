package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/resumelyze/worker/internal/database"
	"github.com/streadway/amqp"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

const agentName = "resume analyzer"

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("empty DB_URL in environment")
	}
	rabbitmqURL := os.Getenv("RABBITMQ_URL")
	if rabbitmqURL == "" {
		log.Fatal("empty RABBITMQ_URL in environment")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}
	dbqueries := database.New(db)

	r2AccountID := os.Getenv("R2_ACCOUNT_ID")
	if r2AccountID == "" {
		log.Fatal("empty R2_ACCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountID,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config: ", err)
	}

	workerConfig := WorkerConfig{
		AgentName: agentName,
		DB:        dbqueries,
		R2:        &r2Config,
		AwsConfig: &awsConfig,
		RabbitURL: rabbitmqURL,
	}

	// The agent is optional: without an API key every session is analyzed
	// with the local engine instead of failing at startup.
	googleAPIKey := os.Getenv("GOOGLE_API_KEY")
	if googleAPIKey == "" {
		log.Println("no GOOGLE_API_KEY in environment, AI mode disabled, using local analysis only")
	} else {
		geminiModel := os.Getenv("GEMINI_MODEL")
		if geminiModel == "" {
			geminiModel = "gemini-2.5-flash"
		}
		analyzerAgent, err := GetAgent(googleAPIKey, agentName, geminiModel)
		if err != nil {
			log.Fatalf("failed to create agent: %v", err)
		}

		inMemoryService := session.InMemoryService()
		r, err := runner.New(runner.Config{
			AppName:        analyzerAgent.Name(),
			Agent:          analyzerAgent,
			SessionService: inMemoryService,
		})
		if err != nil {
			log.Fatalf("failed to create runner: %v", err)
		}
		workerConfig.AgentRunner = r
		workerConfig.AgentSessionService = inMemoryService
	}

	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err: %v", err)
	}
	workerConfig.RabbitConn = conn

	workerCount := 3
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Fatalf("invalid WORKER_COUNT %q", v)
		}
		workerCount = n
	}

	log.Printf("starting %d workers consumer pool", workerCount)
	workerConfig.StartConsumerWorkerPool(workerCount)
}
