package integration_test_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"sam-audio-server/src/application/artifact"
	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/health"
	"sam-audio-server/src/application/integration_test/dummy"
	"sam-audio-server/src/application/jobs/separate"
	"sam-audio-server/src/application/jobs/status"
	"sam-audio-server/src/application/model/samcli"
	"sam-audio-server/src/application/separation"
	"sam-audio-server/src/application/server"
	"sam-audio-server/src/application/session"
	"sam-audio-server/src/application/worker"
	"sam-audio-server/src/lib/working_dir"

	"github.com/streadway/amqp"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("IntegrationTest", func() {
	var (
		codec             audio.WAVCodec
		wd                working_dir.WorkingDir
		clip              audio.Samples
		clipWAV           []byte
		sampleRate        int
		separatorExec     *dummy.SeparatorExecutor
		unavailableAtLoad bool

		modelSession *session.Session
		pipeline     separation.Pipeline
	)

	encodeWAV := func(samples audio.Samples, rate int) []byte {
		path := filepath.Join(wd.Root(), "fixture.wav")
		Expect(audio.EncodeFile(codec, path, samples, rate)).To(Succeed())
		defer os.Remove(path)

		contents, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		return contents
	}

	decodeWAV := func(contents []byte) audio.Samples {
		path := filepath.Join(wd.Root(), "decoded.wav")
		Expect(os.WriteFile(path, contents, 0o600)).To(Succeed())
		defer os.Remove(path)

		samples, _, err := audio.DecodeFile(codec, path)
		Expect(err).NotTo(HaveOccurred())
		return samples
	}

	negated := func(samples audio.Samples) []int {
		data := make([]int, len(samples.Data))
		for i, sample := range samples.Data {
			data[i] = -sample
		}
		return data
	}

	expectNoArtifactsLeft := func() {
		entries, err := os.ReadDir(wd.TempDir())
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	}

	BeforeEach(func() {
		By("Assigning data to variables", func() {
			sampleRate = 16000
			clip = audio.Samples{
				Data:     []int{0, 120, -120, 2400, -2400, 32000, -32000, 7},
				Channels: 1,
				BitDepth: 16,
			}
			unavailableAtLoad = false
		})

		By("Preparing the working directory", func() {
			var err error
			wd, err = working_dir.NewWorkingDir(workingDir)
			Expect(err).NotTo(HaveOccurred())
			_, err = wd.Sweep()
			Expect(err).NotTo(HaveOccurred())

			clipWAV = encodeWAV(clip, sampleRate)
		})

		By("Instantiating the separator dummy", func() {
			separatorExec = dummy.NewDummySeparatorExecutor()
			separatorExec.SampleRate = sampleRate
		})
	})

	JustBeforeEach(func() {
		By("Loading the model session", func() {
			separatorExec.Unavailable = unavailableAtLoad
			loader := samcli.NewLoader("/whatever/sam-audio", "auto", wd, separatorExec, codec)
			modelSession = session.Load(context.Background(), loader, session.Config{
				ModelID:    "facebook/sam-audio-large",
				DeviceHint: "auto",
			})
			separatorExec.Unavailable = false
		})

		pipeline = separation.NewPipeline(modelSession, artifact.NewStore(wd), codec)
	})

	Describe("HTTP", func() {
		var (
			httpServer *httptest.Server
		)

		post := func(path string, payload interface{}) (int, separation.Response) {
			body, err := json.Marshal(payload)
			Expect(err).NotTo(HaveOccurred())

			response, err := http.Post(httpServer.URL+path, "application/json", bytes.NewReader(body))
			Expect(err).NotTo(HaveOccurred())
			defer response.Body.Close()

			var decoded separation.Response
			Expect(json.NewDecoder(response.Body).Decode(&decoded)).To(Succeed())
			return response.StatusCode, decoded
		}

		getHealth := func() health.Status {
			response, err := http.Get(httpServer.URL + "/health")
			Expect(err).NotTo(HaveOccurred())
			defer response.Body.Close()

			var status health.Status
			Expect(json.NewDecoder(response.Body).Decode(&status)).To(Succeed())
			return status
		}

		JustBeforeEach(func() {
			handler := server.NewHandler(pipeline, health.NewReporter(modelSession), server.Options{
				MaxRequestBytes: 10 * 1024 * 1024,
			})
			httpServer = httptest.NewServer(handler)
		})

		AfterEach(func() {
			httpServer.Close()
		})

		It("reports a loaded model", func() {
			Expect(getHealth()).To(Equal(health.Status{
				Status:      "ok",
				ModelLoaded: true,
				Device:      "cpu",
			}))
		})

		It("returns the target track", func() {
			status, response := post("/separate", map[string]interface{}{
				"audio_data":           base64.StdEncoding.EncodeToString(clipWAV),
				"description":          "A man speaking",
				"predict_spans":        true,
				"reranking_candidates": 2,
			})

			Expect(status).To(Equal(http.StatusOK))
			Expect(response.Success).To(BeTrue())
			Expect(response.SampleRate).To(Equal(sampleRate))

			contents, err := base64.StdEncoding.DecodeString(response.AudioData)
			Expect(err).NotTo(HaveOccurred())
			Expect(decodeWAV(contents).Data).To(Equal(clip.Data))

			separateCalls := separatorExec.CallsTo("separate")
			Expect(separateCalls).To(HaveLen(1))
			Expect(dummy.HasFlag(separateCalls[0], "--predict-spans")).To(BeTrue())
			Expect(dummy.OptionValue(separateCalls[0], "--reranking-candidates")).To(Equal("2"))

			expectNoArtifactsLeft()
		})

		It("returns the residual track with default options", func() {
			status, response := post("/separate_residual", map[string]interface{}{
				"audio_data":           base64.StdEncoding.EncodeToString(clipWAV),
				"description":          "A man speaking",
				"predict_spans":        true,
				"reranking_candidates": 2,
			})

			Expect(status).To(Equal(http.StatusOK))

			contents, err := base64.StdEncoding.DecodeString(response.AudioData)
			Expect(err).NotTo(HaveOccurred())
			Expect(decodeWAV(contents).Data).To(Equal(negated(clip)))

			separateCalls := separatorExec.CallsTo("separate")
			Expect(dummy.HasFlag(separateCalls[0], "--predict-spans")).To(BeFalse())
			Expect(dummy.OptionValue(separateCalls[0], "--reranking-candidates")).To(Equal("1"))

			expectNoArtifactsLeft()
		})

		It("rejects an empty description", func() {
			status, response := post("/separate", map[string]interface{}{
				"audio_data":  base64.StdEncoding.EncodeToString(clipWAV),
				"description": "",
			})

			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(response).To(Equal(separation.Response{Success: false, Error: "description is required"}))
			Expect(separatorExec.CallsTo("separate")).To(BeEmpty())
		})

		It("reports inference failures without leaking paths", func() {
			status, response := post("/separate", map[string]interface{}{
				"audio_data":  base64.StdEncoding.EncodeToString([]byte("this is not a wav file")),
				"description": "A man speaking",
			})

			Expect(status).To(Equal(http.StatusInternalServerError))
			Expect(response.Success).To(BeFalse())
			Expect(response.Error).NotTo(BeEmpty())
			Expect(response.Error).NotTo(ContainSubstring(wd.TempDir()))

			expectNoArtifactsLeft()
		})

		Describe("When the model failed to load", func() {
			BeforeEach(func() {
				unavailableAtLoad = true
			})

			It("reports the model as not loaded", func() {
				status := getHealth()
				Expect(status.Status).To(Equal("ok"))
				Expect(status.ModelLoaded).To(BeFalse())
			})

			It("fails both separations with a server error", func() {
				for _, path := range []string{"/separate", "/separate_residual"} {
					status, response := post(path, map[string]interface{}{
						"audio_data":  base64.StdEncoding.EncodeToString(clipWAV),
						"description": "A man speaking",
					})

					Expect(status).To(Equal(http.StatusInternalServerError))
					Expect(response.Error).To(Equal("Model not loaded. Please check server logs."))
				}

				Expect(separatorExec.CallsTo("separate")).To(BeEmpty())
				expectNoArtifactsLeft()
			})
		})
	})

	Describe("Queue", func() {
		var (
			jobsQueue    *dummy.RabbitMQ
			resultsQueue *dummy.RabbitMQ
			fileStore    *dummy.FileStore
			statusStore  *dummy.StatusStore
			queueWorker  worker.QueueWorker

			sourceURL string
			destURL   string

			ctx    context.Context
			cancel context.CancelFunc
			run    func(params separate.JobParams)
		)

		BeforeEach(func() {
			sourceURL = "https://storage.googleapis.com/bucket-head/jobs/source.wav"
			destURL = "s3://bucket-head/jobs/residual.wav"

			jobsQueue = dummy.NewRabbitMQ()
			resultsQueue = dummy.NewRabbitMQ()
			fileStore = dummy.NewDummyFileStore()
			statusStore = dummy.NewDummyStatusStore()

			Expect(fileStore.WriteFile(context.Background(), sourceURL, clipWAV)).To(Succeed())

			ctx, cancel = context.WithCancel(context.Background())
		})

		JustBeforeEach(func() {
			handler := separate.NewJobHandler(fileStore, pipeline, resultsQueue).WithStatusStore(statusStore)
			queueWorker = worker.NewQueueWorker(jobsQueue, "test-queue", []worker.MessageHandler{handler})

			run = func(params separate.JobParams) {
				go func() {
					defer GinkgoRecover()
					err := queueWorker.Start(ctx)
					Expect(err).NotTo(HaveOccurred())
				}()

				message, err := separate.CreateJobMessage(params)
				Expect(err).NotTo(HaveOccurred())
				Expect(jobsQueue.Publish(message)).To(Succeed())
			}
		})

		AfterEach(func() {
			cancel()
		})

		It("separates, uploads and reports the job", func() {
			run(separate.JobParams{
				JobID:       "job-1",
				SourceURL:   sourceURL,
				DestURL:     destURL,
				Description: "A man speaking",
				Track:       "residual",
			})

			Eventually(jobsQueue.AckCounter).Should(Equal(1))

			var result amqp.Delivery
			Eventually(resultsQueue.MessageChannel).Should(Receive(&result))
			Expect(result.Type).To(Equal(separate.CompletedType))

			var params separate.ResultParams
			Expect(json.Unmarshal(result.Body, &params)).To(Succeed())
			Expect(params.JobID).To(Equal("job-1"))
			Expect(params.SampleRate).To(Equal(sampleRate))

			contents, err := fileStore.GetFile(context.Background(), destURL)
			Expect(err).NotTo(HaveOccurred())
			Expect(decodeWAV(contents).Data).To(Equal(negated(clip)))

			record, err := statusStore.GetStatus(context.Background(), "job-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.State).To(Equal(status.Completed))
			Expect(record.DestURL).To(Equal(destURL))

			expectNoArtifactsLeft()
		})

		It("gets no nacks", func() {
			run(separate.JobParams{
				SourceURL:   sourceURL,
				DestURL:     destURL,
				Description: "A man speaking",
			})

			Eventually(jobsQueue.AckCounter).Should(Equal(1))
			Consistently(jobsQueue.NackCounter).Should(Equal(0))
		})

		Describe("When the model failed to load", func() {
			BeforeEach(func() {
				unavailableAtLoad = true
			})

			It("nacks the job and reports the failure", func() {
				run(separate.JobParams{
					JobID:       "job-2",
					SourceURL:   sourceURL,
					DestURL:     destURL,
					Description: "A man speaking",
				})

				Eventually(jobsQueue.NackCounter).Should(Equal(1))
				Expect(jobsQueue.RequeueCounter()).To(Equal(0))

				var result amqp.Delivery
				Eventually(resultsQueue.MessageChannel).Should(Receive(&result))
				Expect(result.Type).To(Equal(separate.FailedType))

				var params separate.ResultParams
				Expect(json.Unmarshal(result.Body, &params)).To(Succeed())
				Expect(params.Error).To(Equal("Model not loaded. Please check server logs."))

				_, err := fileStore.GetFile(context.Background(), destURL)
				Expect(err).To(MatchError(dummy.NotFound))

				record, err := statusStore.GetStatus(context.Background(), "job-2")
				Expect(err).NotTo(HaveOccurred())
				Expect(record.State).To(Equal(status.Failed))
			})
		})
	})
})
