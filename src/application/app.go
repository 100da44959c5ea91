package application

import (
	"context"
	"net/http"
	"sync"

	"sam-audio-server/src/application/artifact"
	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/cloud_storage/entity"
	filestore "sam-audio-server/src/application/cloud_storage/store"
	"sam-audio-server/src/application/config"
	"sam-audio-server/src/application/executor"
	"sam-audio-server/src/application/health"
	"sam-audio-server/src/application/jobs/separate"
	"sam-audio-server/src/application/jobs/status"
	"sam-audio-server/src/application/model/samcli"
	"sam-audio-server/src/application/publish"
	"sam-audio-server/src/application/separation"
	"sam-audio-server/src/application/server"
	"sam-audio-server/src/application/session"
	"sam-audio-server/src/application/worker"
	"sam-audio-server/src/lib/cerr"
	"sam-audio-server/src/lib/working_dir"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

type App struct {
	session     *session.Session
	httpServer  *http.Server
	workers     []worker.QueueWorker
	connections []*amqp.Connection
}

func NewApp(ctx context.Context, cfg config.Config) (App, error) {
	codec := audio.WAVCodec{}

	modelSession, workingDir, err := loadSession(ctx, cfg, codec)
	if err != nil {
		return App{}, err
	}

	pipeline := separation.NewPipeline(modelSession, artifact.NewStore(workingDir), codec)
	handler := server.NewHandler(pipeline, health.NewReporter(modelSession), server.Options{
		MaxRequestBytes: cfg.Server.MaxRequestBytes,
		AllowedOrigins:  cfg.Server.CORSAllowedOrigins,
	})

	app := App{
		session:    modelSession,
		httpServer: server.NewHTTPServer(cfg.Address(), handler),
	}

	if cfg.QueueEnabled() {
		if err := app.setUpWorkers(cfg, pipeline); err != nil {
			app.closeConnections()
			return App{}, err
		}
	}

	return app, nil
}

// Start serves HTTP and runs the queue workers until ctx is done. The
// workers are stopped as soon as the HTTP server stops, for whatever reason.
func (a *App) Start(ctx context.Context) error {
	defer a.closeConnections()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, queueWorker := range a.workers {
		wg.Add(1)
		go func(queueWorker worker.QueueWorker) {
			defer wg.Done()
			if err := queueWorker.Start(ctx); err != nil {
				cerr.Log(cerr.Wrap(err).Error("Failed to start worker!"))
			}
		}(queueWorker)
	}

	err := server.Serve(ctx, a.httpServer)
	if err != nil {
		cerr.Log(err)
	}

	cancel()
	wg.Wait()

	return err
}

// CheckModel loads the model once and reports whether it is usable.
func CheckModel(ctx context.Context, cfg config.Config) (health.Status, string, error) {
	modelSession, _, err := loadSession(ctx, cfg, audio.WAVCodec{})
	if err != nil {
		return health.Status{}, "", err
	}

	return health.NewReporter(modelSession).Status(), modelSession.Cause(), nil
}

func loadSession(ctx context.Context, cfg config.Config, codec audio.Codec) (*session.Session, working_dir.WorkingDir, error) {
	workingDir, err := working_dir.NewWorkingDir(cfg.Model.WorkingDir)
	if err != nil {
		return nil, working_dir.WorkingDir{}, err
	}

	removed, err := workingDir.Sweep()
	if err != nil {
		return nil, working_dir.WorkingDir{}, err
	}

	if removed > 0 {
		log.WithField("removed", removed).Warn("Removed stale artifacts from a previous run")
	}

	inferenceTimeout, err := cfg.InferenceTimeout()
	if err != nil {
		return nil, working_dir.WorkingDir{}, err
	}

	loader := samcli.NewLoader(cfg.Model.SeparatorBin, cfg.Model.Device, workingDir, executor.BinaryFileExecutor{}, codec)
	modelSession := session.Load(ctx, loader, session.Config{
		ModelID:          cfg.Model.ID,
		DeviceHint:       cfg.Model.Device,
		InferenceTimeout: inferenceTimeout,
	})

	return modelSession, workingDir, nil
}

func (a *App) setUpWorkers(cfg config.Config, pipeline separation.Pipeline) error {
	consumerConn, err := amqp.Dial(cfg.Queue.URL)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to connect to RabbitMQ for consuming")
	}
	a.connections = append(a.connections, consumerConn)

	producerConn, err := amqp.Dial(cfg.Queue.URL)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to connect to RabbitMQ for publishing")
	}
	a.connections = append(a.connections, producerConn)

	publisher, err := publish.NewRabbitMQPublisher(producerConn, cfg.Queue.ResultQueueName)
	if err != nil {
		return err
	}

	fileStore, err := newFileStore(cfg)
	if err != nil {
		return err
	}

	statusStore, err := NewStatusStore(cfg)
	if err != nil {
		return err
	}

	handler := separate.NewJobHandler(fileStore, pipeline, publisher).WithStatusStore(statusStore)
	for i := 0; i < cfg.Queue.NumWorkers; i++ {
		queueWorker, err := worker.NewQueueWorkerFromConnection(consumerConn, cfg.Queue.Name, []worker.MessageHandler{handler})
		if err != nil {
			return err
		}
		a.workers = append(a.workers, queueWorker)
	}

	log.WithFields(log.Fields{
		"queue_name": cfg.Queue.Name,
		"workers":    cfg.Queue.NumWorkers,
	}).Info("Queue workers ready")

	return nil
}

func newFileStore(cfg config.Config) (entity.FileStore, error) {
	routes := []filestore.Route{}

	if cfg.Storage.GoogleCloudKey != "" {
		googleFileStore, err := filestore.NewGoogleFileStore(cfg.Storage.GoogleCloudKey)
		if err != nil {
			return nil, err
		}
		routes = append(routes, filestore.GoogleRoute(googleFileStore))
	}

	if cfg.Storage.AWSRegion != "" || cfg.Storage.S3Endpoint != "" {
		s3FileStore, err := filestore.NewS3FileStore(cfg.Storage.AWSRegion, cfg.Storage.S3Endpoint)
		if err != nil {
			return nil, err
		}
		routes = append(routes, filestore.S3Route(s3FileStore))
	}

	if len(routes) == 0 {
		log.Warn("No cloud file store is configured, every queued job will fail")
	}

	return filestore.NewRouter(routes...), nil
}

// NewStatusStore falls back to a no-op store when no jobs table is configured.
func NewStatusStore(cfg config.Config) (status.Store, error) {
	if !cfg.JobStatusEnabled() {
		return status.NopStore{}, nil
	}

	return status.NewDynamoDBStatusStore(cfg.Storage.AWSRegion, cfg.Storage.DynamoDBEndpoint, cfg.Storage.JobsTable)
}

func (a *App) closeConnections() {
	for _, conn := range a.connections {
		if err := conn.Close(); err != nil && err != amqp.ErrClosed {
			log.WithError(err).Error("Failed to close RabbitMQ connection")
		}
	}
	a.connections = nil
}
