// Command evald runs the evaluation orchestrator daemon: it drains the main
// task queue, fans records out to the dimension worker pools, collects their
// results and finalises evaluations.
//
// Run modes:
//
//	evald -mode start    run the orchestrator (default)
//	evald -mode stop     signal the running orchestrator to shut down
//	evald -mode status   print queue depths, in-flight tasks, live workers
//	                     and active batches, then exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/agentic-eval/evalcore/config"
	"github.com/agentic-eval/evalcore/eval"
	"github.com/agentic-eval/evalcore/eval/pg/evalsqlc"
	"github.com/agentic-eval/evalcore/metrics"
	"github.com/agentic-eval/evalcore/queue"
)

type AppConfig struct {
	DBConnURL     string `json:"db_conn_url"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	MinioEndpoint  string `json:"minio_endpoint"`
	MinioAccessKey string `json:"minio_access_key"`
	MinioSecretKey string `json:"minio_secret_key"`
	MinioUseSSL    bool   `json:"minio_use_ssl"`
	ReportBucket   string `json:"report_bucket"`

	MetricsPort string `json:"metrics_port"`

	MaxConcurrentTasks int `json:"max_concurrent_tasks"`
	MaxRetries         int `json:"max_retries"`
	TaskTimeoutSec     int `json:"task_timeout_sec"`
	SweepIntervalSec   int `json:"sweep_interval_sec"`
}

func main() {
	mode := flag.String("mode", "start", "start, stop or status")
	pidfilePath := flag.String("pidfile", "./evald.pid", "Path to the orchestrator pidfile")
	configSystem := flag.String("configSource", "file", "The configuration system to use (file or rigel)")
	configFilePath := flag.String("configFile", "./evald.json", "The path to the configuration file")
	etcdEndpoints := flag.String("etcdEndpoints", "localhost:2379", "Comma-separated etcd endpoints for Rigel")
	rigelConfigName := flag.String("configName", "evald", "The name of the configuration")
	rigelSchemaName := flag.String("schemaName", "evald", "The name of the schema")
	rigelSchemaVersion := flag.Int("schemaVersion", 1, "The version of the schema")
	flag.Parse()

	// Stop needs neither config nor broker, only the pidfile.
	if *mode == "stop" {
		stopOrchestrator(*pidfilePath)
		return
	}

	var appConfig AppConfig
	var err error
	switch *configSystem {
	case "file":
		err = config.LoadConfigFromFile(*configFilePath, &appConfig)
	case "rigel":
		err = config.LoadConfigFromRigel(*etcdEndpoints, *rigelSchemaName, *rigelSchemaVersion, *rigelConfigName, &appConfig)
	default:
		log.Fatalf("Unknown configuration system: %s", *configSystem)
	}
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if appConfig.RedisAddr == "" {
		appConfig.RedisAddr = "localhost:6379"
	}

	broker, err := queue.Connect(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", appConfig.RedisAddr, err)
	}
	defer broker.Close()

	switch *mode {
	case "start":
		runOrchestrator(appConfig, broker, *pidfilePath)
	case "status":
		printStatus(appConfig, broker)
	default:
		log.Fatalf("Unknown mode: %s", *mode)
	}
}

func writePidfile(path string) error {
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPidfile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("pidfile %s does not contain a pid: %w", path, err)
	}
	return pid, nil
}

func stopOrchestrator(pidfilePath string) {
	pid, err := readPidfile(pidfilePath)
	if err != nil {
		log.Fatalf("Could not read pidfile: %v", err)
	}
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		log.Fatalf("Could not signal pid %d: %v", pid, err)
	}
	fmt.Printf("Sent SIGTERM to pid %d\n", pid)
}

func runOrchestrator(appConfig AppConfig, broker *queue.Broker, pidfilePath string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := writePidfile(pidfilePath); err != nil {
		log.Fatalf("Could not write pidfile %s: %v", pidfilePath, err)
	}
	defer os.Remove(pidfilePath)

	lctx := logharbour.NewLoggerContext(logharbour.DefaultPriority)
	lh := logharbour.NewLogger(lctx, "evald", os.Stdout)

	if err := migrate(ctx, appConfig.DBConnURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, appConfig.DBConnURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	var minioClient *minio.Client
	if appConfig.MinioEndpoint != "" {
		minioClient, err = minio.New(appConfig.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(appConfig.MinioAccessKey, appConfig.MinioSecretKey, ""),
			Secure: appConfig.MinioUseSSL,
		})
		if err != nil {
			log.Fatalf("Failed to create Minio client: %v", err)
		}
	}

	orch := eval.NewOrchestrator(pool, broker, minioClient, lh, &eval.Config{
		MaxConcurrentTasks: appConfig.MaxConcurrentTasks,
		MaxRetries:         appConfig.MaxRetries,
		TaskTimeout:        time.Duration(appConfig.TaskTimeoutSec) * time.Second,
		SweepInterval:      time.Duration(appConfig.SweepIntervalSec) * time.Second,
		ReportBucket:       appConfig.ReportBucket,
	})
	promMetrics := metrics.NewPrometheusMetrics()
	orch.SetMetrics(promMetrics)

	if appConfig.MetricsPort != "" {
		go promMetrics.StartMetricsServer(appConfig.MetricsPort)
	}

	if err := orch.Start(ctx); err != nil {
		log.Fatalf("Failed to start orchestrator: %v", err)
	}

	<-ctx.Done()
	if err := orch.Shutdown(); err != nil {
		log.Printf("Shutdown: %v", err)
		os.Exit(1)
	}
}

// migrate opens a dedicated connection for Tern; the pool cannot be used
// because Tern needs a plain *pgx.Conn.
func migrate(ctx context.Context, connURL string) error {
	conn, err := pgx.Connect(ctx, connURL)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return eval.MigrateDatabase(conn)
}

func printStatus(appConfig AppConfig, broker *queue.Broker) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	queues := []string{eval.MainTaskQueue}
	for _, d := range eval.AllDimensions {
		queues = append(queues, eval.DimensionQueue(d))
	}
	queues = append(queues, eval.ResultsQueue)

	fmt.Println("Queues:")
	for _, q := range queues {
		n, err := broker.Length(ctx, q)
		if err != nil {
			fmt.Printf("  %-35s error: %v\n", q, err)
			continue
		}
		fmt.Printf("  %-35s %d\n", q, n)
	}

	inflight, err := eval.CountInFlightTasks(ctx, broker)
	if err != nil {
		fmt.Printf("In-flight tasks: error: %v\n", err)
	} else {
		fmt.Printf("In-flight tasks: %d\n", inflight)
	}

	workers, err := eval.ListLiveWorkers(ctx, broker)
	if err != nil {
		fmt.Printf("Workers: error: %v\n", err)
		return
	}
	fmt.Printf("Live workers: %d\n", len(workers))
	for _, w := range workers {
		fmt.Printf("  %-40s %-10s last heartbeat %s\n", w.WorkerID, w.Status, w.LastHeartbeat.Format(time.RFC3339))
	}

	if appConfig.DBConnURL == "" {
		return
	}
	pool, err := pgxpool.New(ctx, appConfig.DBConnURL)
	if err != nil {
		fmt.Printf("Batches: error: %v\n", err)
		return
	}
	defer pool.Close()

	queries := evalsqlc.New(pool)
	batches, err := queries.ListActiveBatches(ctx)
	if err != nil {
		fmt.Printf("Batches: error: %v\n", err)
		return
	}
	fmt.Printf("Active batches: %d\n", len(batches))
	for _, b := range batches {
		// The counter columns on batches are written only at closure; live
		// counts come from the records.
		row, err := queries.GetBatchProgress(ctx, b.ID)
		if err != nil {
			fmt.Printf("  %s %-12s error: %v\n", b.ID, b.Status, err)
			continue
		}
		fmt.Printf("  %s %-12s total=%d pending=%d processing=%d completed=%d failed=%d cancelled=%d\n",
			b.ID, b.Status, row.Total,
			row.Pending, row.Processing, row.Completed, row.Failed, row.Cancelled)
	}
}
