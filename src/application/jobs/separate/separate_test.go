package separate_test

import (
	"context"
	"encoding/json"
	"errors"

	"sam-audio-server/src/application/artifact"
	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/integration_test/dummy"
	"sam-audio-server/src/application/jobs/separate"
	"sam-audio-server/src/application/jobs/separate/separatefakes"
	"sam-audio-server/src/application/jobs/status"
	"sam-audio-server/src/application/jobs/status/statusfakes"
	"sam-audio-server/src/application/model"
	"sam-audio-server/src/application/publish/publishfakes"
	"sam-audio-server/src/application/separation"
	"sam-audio-server/src/application/separation/separationfakes"
	"sam-audio-server/src/application/session"
	"sam-audio-server/src/lib/working_dir"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Separate handler", func() {
	var (
		sourceURL   string
		destURL     string
		sourceAudio []byte

		dummyFileStore *dummy.FileStore
		fakeSeparator  *separatefakes.FakeSeparator
		fakePublisher  *publishfakes.FakePublisher

		handler separate.JobHandler
		params  separate.JobParams
		err     error
	)

	publishedResult := func() (string, separate.ResultParams) {
		Expect(fakePublisher.PublishCallCount()).To(Equal(1))
		msg := fakePublisher.PublishArgsForCall(0)

		var result separate.ResultParams
		Expect(json.Unmarshal(msg.Body, &result)).To(Succeed())
		return msg.Type, result
	}

	BeforeEach(func() {
		By("Assigning all the variables data", func() {
			sourceURL = "https://storage.googleapis.com/bucket-head/jobs/source.wav"
			destURL = "s3://bucket-head/jobs/target.wav"
			sourceAudio = []byte("RIFF source")
		})

		By("Instantiating all mocks", func() {
			dummyFileStore = dummy.NewDummyFileStore()
			fakeSeparator = &separatefakes.FakeSeparator{}
			fakeSeparator.RunReturns(separation.Output{Audio: []byte("RIFF separated"), SampleRate: 48000}, nil)
			fakePublisher = &publishfakes.FakePublisher{}
		})

		By("Setting up file on the file store", func() {
			Expect(dummyFileStore.WriteFile(context.Background(), sourceURL, sourceAudio)).To(Succeed())
		})

		params = separate.JobParams{
			JobID:       "job-1",
			SourceURL:   sourceURL,
			DestURL:     destURL,
			Description: "A dog barking",
		}

		handler = separate.NewJobHandler(dummyFileStore, fakeSeparator, fakePublisher)
	})

	JustBeforeEach(func() {
		message, marshalErr := json.Marshal(params)
		Expect(marshalErr).NotTo(HaveOccurred())

		err = handler.HandleMessage(context.Background(), message)
	})

	It("handles separate_audio jobs", func() {
		Expect(handler.JobType()).To(Equal("separate_audio"))
	})

	Describe("Happy path", func() {
		It("succeeds", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("separates the source audio for the target track", func() {
			Expect(fakeSeparator.RunCallCount()).To(Equal(1))
			_, audioBytes, description, options, track := fakeSeparator.RunArgsForCall(0)
			Expect(audioBytes).To(Equal(sourceAudio))
			Expect(description).To(Equal("A dog barking"))
			Expect(options).To(Equal(model.DefaultOptions()))
			Expect(track).To(Equal(separation.TargetTrack))
		})

		It("uploads the separated audio", func() {
			contents, err := dummyFileStore.GetFile(context.Background(), destURL)
			Expect(err).NotTo(HaveOccurred())
			Expect(contents).To(Equal([]byte("RIFF separated")))
		})

		It("publishes a completion result", func() {
			resultType, result := publishedResult()
			Expect(resultType).To(Equal(separate.CompletedType))
			Expect(result).To(Equal(separate.ResultParams{
				JobID:      "job-1",
				Track:      "target",
				DestURL:    destURL,
				SampleRate: 48000,
			}))
		})
	})

	Describe("With options", func() {
		BeforeEach(func() {
			predictSpans := true
			rerankingCandidates := 3
			params.PredictSpans = &predictSpans
			params.RerankingCandidates = &rerankingCandidates
		})

		It("forwards them for the target track", func() {
			_, _, _, options, _ := fakeSeparator.RunArgsForCall(0)
			Expect(options).To(Equal(model.Options{PredictSpans: true, RerankingCandidates: 3}))
		})

		Describe("For the residual track", func() {
			BeforeEach(func() {
				params.Track = "residual"
			})

			It("uses the default options", func() {
				_, _, _, options, track := fakeSeparator.RunArgsForCall(0)
				Expect(track).To(Equal(separation.ResidualTrack))
				Expect(options).To(Equal(model.DefaultOptions()))
			})
		})
	})

	Describe("Without a job id", func() {
		BeforeEach(func() {
			params.JobID = ""
		})

		It("generates one", func() {
			_, result := publishedResult()
			Expect(result.JobID).NotTo(BeEmpty())
		})
	})

	Describe("Failures", func() {
		var expectFailurePublished = func(messageSubstring string) {
			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})

			It("publishes a failure result", func() {
				resultType, result := publishedResult()
				Expect(resultType).To(Equal(separate.FailedType))
				Expect(result.JobID).To(Equal("job-1"))
				Expect(result.Error).To(ContainSubstring(messageSubstring))
			})

			It("uploads nothing", func() {
				_, err := dummyFileStore.GetFile(context.Background(), destURL)
				Expect(errors.Is(err, dummy.NotFound)).To(BeTrue())
			})
		}

		Describe("When the description is missing", func() {
			BeforeEach(func() {
				params.Description = ""
			})

			expectFailurePublished("description is required")

			It("never separates", func() {
				Expect(fakeSeparator.RunCallCount()).To(BeZero())
			})
		})

		Describe("When the track is unknown", func() {
			BeforeEach(func() {
				params.Track = "drums"
			})

			expectFailurePublished("track must be target or residual")
		})

		Describe("When the source is missing", func() {
			BeforeEach(func() {
				params.SourceURL = "https://storage.googleapis.com/bucket-head/jobs/nope.wav"
			})

			expectFailurePublished("Failed to fetch the source audio")
		})

		Describe("When the separation fails", func() {
			BeforeEach(func() {
				fakeSeparator.RunReturns(separation.Output{}, separation.Failure{
					Kind:    separation.ModelUnavailableFailure,
					Message: separation.ModelNotLoadedMessage,
				})
			})

			expectFailurePublished(separation.ModelNotLoadedMessage)
		})
	})

	Describe("When the result cannot be published", func() {
		BeforeEach(func() {
			fakePublisher.PublishReturns(dummy.NetworkFailure)
		})

		It("returns an error", func() {
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, dummy.NetworkFailure)).To(BeTrue())
		})
	})

	Describe("With a status store", func() {
		var fakeStatusStore *statusfakes.FakeStore

		recordedStates := func() []status.State {
			states := []status.State{}
			for i := 0; i < fakeStatusStore.SetStatusCallCount(); i++ {
				_, record := fakeStatusStore.SetStatusArgsForCall(i)
				states = append(states, record.State)
			}
			return states
		}

		BeforeEach(func() {
			fakeStatusStore = &statusfakes.FakeStore{}
			handler = handler.WithStatusStore(fakeStatusStore)
		})

		It("records the job as processing and then completed", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(recordedStates()).To(Equal([]status.State{status.Processing, status.Completed}))

			_, record := fakeStatusStore.SetStatusArgsForCall(1)
			Expect(record.JobID).To(Equal("job-1"))
			Expect(record.Track).To(Equal("target"))
			Expect(record.DestURL).To(Equal(destURL))
			Expect(record.SampleRate).To(Equal(48000))
			Expect(record.UpdatedAt).NotTo(BeZero())
		})

		Describe("When the job fails", func() {
			BeforeEach(func() {
				params.Description = ""
			})

			It("records the failure message", func() {
				Expect(recordedStates()).To(Equal([]status.State{status.Processing, status.Failed}))

				_, record := fakeStatusStore.SetStatusArgsForCall(1)
				Expect(record.Error).To(Equal("description is required"))
			})
		})

		Describe("When the store is down", func() {
			BeforeEach(func() {
				fakeStatusStore.SetStatusReturns(dummy.NetworkFailure)
			})

			It("still completes the job", func() {
				Expect(err).NotTo(HaveOccurred())
				resultType, _ := publishedResult()
				Expect(resultType).To(Equal(separate.CompletedType))
			})
		})
	})

	Describe("With a malformed message", func() {
		It("returns an error without publishing", func() {
			publishedBefore := fakePublisher.PublishCallCount()

			err := handler.HandleMessage(context.Background(), []byte("{not json"))
			Expect(err).To(HaveOccurred())
			Expect(fakePublisher.PublishCallCount()).To(Equal(publishedBefore))
		})
	})

	Describe("With the real pipeline", func() {
		var residual audio.Samples

		BeforeEach(func() {
			wd, wdErr := working_dir.NewWorkingDir(workingDir)
			Expect(wdErr).NotTo(HaveOccurred())

			residual = audio.Samples{Data: []int{5, -5, 5, -5}, Channels: 1, BitDepth: 16}
			fakeSession := &separationfakes.FakeModelSession{}
			fakeSession.LoadedReturns(true)
			fakeSession.SeparateReturns(session.Result{
				Target:     audio.Silence(4, 1),
				Residual:   residual,
				SampleRate: 16000,
			}, nil)

			params.Track = "residual"
			handler = separate.NewJobHandler(dummyFileStore, separation.NewPipeline(fakeSession, artifact.NewStore(wd), audio.WAVCodec{}), fakePublisher)
		})

		It("uploads the residual track as WAV", func() {
			Expect(err).NotTo(HaveOccurred())

			contents, err := dummyFileStore.GetFile(context.Background(), destURL)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents[:4])).To(Equal("RIFF"))

			_, result := publishedResult()
			Expect(result.SampleRate).To(Equal(16000))
			Expect(result.Track).To(Equal("residual"))
		})
	})
})
