package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/maze-walker/api"
	exploreapi "github.com/beka-birhanu/maze-walker/api/explore"
	api_i "github.com/beka-birhanu/maze-walker/api/i"
	"github.com/beka-birhanu/maze-walker/api/identity"
	"github.com/beka-birhanu/maze-walker/config"
	"github.com/beka-birhanu/maze-walker/explorer"
	"github.com/beka-birhanu/maze-walker/infrastruture/framequeue"
	logger "github.com/beka-birhanu/maze-walker/infrastruture/log"
	"github.com/beka-birhanu/maze-walker/infrastruture/repo"
	"github.com/beka-birhanu/maze-walker/infrastruture/token"
	"github.com/beka-birhanu/maze-walker/maze"
	"github.com/beka-birhanu/maze-walker/prompt"
	"github.com/beka-birhanu/maze-walker/render"
	"github.com/beka-birhanu/maze-walker/service"
	"github.com/beka-birhanu/maze-walker/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	operatorTokenTTL = 24 * time.Hour
	runsCollection   = "runs"
	banner           = `
  __  __                  __        __    _ _
 |  \/  | __ _ _______    \ \      / /_ _| | | _____ _ __
 | |\/| |/ _' |_  / _ \    \ \ /\ / / _' | | |/ / _ \ '__|
 | |  | | (_| |/ /  __/     \ V  V / (_| | |   <  __/ |
 |_|  |_|\__,_/___\___|      \_/\_/ \__,_|_|_|\_\___|_|

 Walks left, right, down and up until it finds a way out.
`
)

// Global variables for dependencies
var (
	mongoClient           *mongo.Client
	redisClient           *redis.Client
	runRepo               i.RunRepo
	frameQueue            i.FrameQueue
	jwtTokenizer          i.Tokenizer
	explorationService    *service.ExplorationService
	explorationController api_i.Controller
	router                *api.Router
	appLogger             *logger.Logger
)

func newLogger(prefix, color string, w io.Writer) *logger.Logger {
	l, err := logger.New(prefix, color, w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRunRepo(client *mongo.Client) {
	runRepo = repo.NewRunRepo(client, config.Envs.DBName, runsCollection)
	appLogger.Info("Run repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initFrameQueue(client *redis.Client) {
	var err error
	frameQueue, err = framequeue.NewRedisFrameQueue(client, config.Envs.FrameTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating frame queue: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Frame queue initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initExplorationService(c *service.Config) {
	var err error
	explorationService, err = service.NewExplorationService(c)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating exploration service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Exploration service initialized")
}

func initExplorationController() {
	var err error
	explorationController, err = exploreapi.NewExplorationController(explorationService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating exploration controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Exploration controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{explorationController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

// runCLI explores the configured maze file in the terminal.
func runCLI(ctx context.Context) error {
	fmt.Print(banner)

	grid, start, err := maze.Load(config.Envs.MazeFile)
	if err != nil {
		return fmt.Errorf("loading maze %s: %w", config.Envs.MazeFile, err)
	}

	override, ok := maze.Coordinate{X: config.Envs.StartX, Y: config.Envs.StartY}, config.Envs.HasStart
	if !ok && config.Envs.Interactive {
		override, ok, err = prompt.NewStartPrompt(os.Stdin, os.Stdout).Ask(grid)
		if err != nil {
			return fmt.Errorf("reading start position: %w", err)
		}
	}
	if ok {
		start, err = maze.Relocate(grid, override)
		if err != nil {
			return fmt.Errorf("overriding start with %s: %w", override, err)
		}
	}

	logFile, err := render.OpenLogFile(config.Envs.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	var sink explorer.Sink
	closeScreen := func() {}
	serviceOut := io.Writer(os.Stdout)
	switch config.Envs.Renderer {
	case config.RendererTUI:
		screen, err := render.NewScreenSink()
		if err != nil {
			return fmt.Errorf("opening terminal screen: %w", err)
		}
		defer screen.Close()
		closeScreen = screen.Close
		sink = explorer.MultiSink(screen, render.NewWriterSink(logFile))
		serviceOut = io.Discard
	default:
		sink = render.NewWriterSink(os.Stdout, logFile)
	}

	initExplorationService(&service.Config{
		Logger:   newLogger("EXPLORER", config.ColorCyan, serviceOut),
		Sinks:    []explorer.Sink{sink},
		Delay:    time.Duration(config.Envs.TickDelayMS) * time.Millisecond,
		MaxTicks: config.Envs.MaxTicks,
	})

	run, err := explorationService.ExploreGrid(ctx, config.Envs.MazeFile, grid, start)
	closeScreen()
	if err != nil {
		return fmt.Errorf("exploring maze: %w", err)
	}

	switch {
	case run.Exited():
		fmt.Println("Exited the maze!")
	case run.Truncated:
		fmt.Printf("Gave up after %d ticks.\n", run.Ticks)
	default:
		fmt.Println("There is no exit!")
	}
	return nil
}

// runServer serves explorations over HTTP, backed by MongoDB and Redis.
func runServer() {
	if err := config.Envs.ValidateServer(); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRunRepo(mongoClient)

	initRedis(ctx)
	defer redisClient.Close()
	initFrameQueue(redisClient)

	initJWTTokenizer()
	initExplorationService(&service.Config{
		Repo:     runRepo,
		Frames:   frameQueue,
		Logger:   newLogger("EXPLORER", config.ColorCyan, os.Stdout),
		MaxTicks: config.Envs.MaxTicks,
	})
	initExplorationController()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

// printOperatorToken prints a bearer token for the protected routes.
func printOperatorToken() {
	if config.Envs.JWTSecret == "" {
		appLogger.Error("JWT_SECRET is required to sign tokens")
		os.Exit(1)
	}

	initJWTTokenizer()
	t, err := jwtTokenizer.Generate(map[string]interface{}{"role": identity.OperatorRole}, operatorTokenTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Signing operator token: %v", err))
		os.Exit(1)
	}
	fmt.Println(t)
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen, os.Stdout)

	switch config.Envs.Mode {
	case config.ModeServer:
		runServer()
	case config.ModeToken:
		printOperatorToken()
	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := runCLI(ctx)
		stop()
		if err != nil {
			appLogger.Error(err.Error())
			os.Exit(1)
		}
	}
}
