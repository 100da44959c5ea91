package separation_test

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"

	"sam-audio-server/src/application/artifact"
	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/model"
	"sam-audio-server/src/application/separation"
	"sam-audio-server/src/application/separation/separationfakes"
	"sam-audio-server/src/application/session"
	"sam-audio-server/src/lib/working_dir"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Pipeline", func() {
	var (
		wd           working_dir.WorkingDir
		store        artifact.Store
		codec        audio.WAVCodec
		fakeSession  *separationfakes.FakeModelSession
		pipeline     separation.Pipeline
		request      separation.Request
		target       audio.Samples
		residual     audio.Samples
		sampleRate   int
		inputPayload []byte
		scratchDir   string
	)

	encodeWAV := func(samples audio.Samples, rate int) []byte {
		path := filepath.Join(scratchDir, "expected.wav")
		Expect(audio.EncodeFile(codec, path, samples, rate)).To(Succeed())
		contents, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		return contents
	}

	decodeResponse := func(response separation.Response) audio.Samples {
		contents, err := base64.StdEncoding.DecodeString(response.AudioData)
		Expect(err).NotTo(HaveOccurred())

		path := filepath.Join(scratchDir, "actual.wav")
		Expect(os.WriteFile(path, contents, 0o600)).To(Succeed())

		samples, _, err := audio.DecodeFile(codec, path)
		Expect(err).NotTo(HaveOccurred())
		return samples
	}

	separatedPaths := func() []string {
		paths := []string{}
		for i := 0; i < fakeSession.SeparateCallCount(); i++ {
			_, input, _, _ := fakeSession.SeparateArgsForCall(i)
			paths = append(paths, input.Path())
		}
		return paths
	}

	tempEntries := func() []os.DirEntry {
		entries, err := os.ReadDir(store.Dir())
		Expect(err).NotTo(HaveOccurred())
		return entries
	}

	BeforeEach(func() {
		var err error
		scratchDir, err = os.MkdirTemp("", "separation-*")
		Expect(err).NotTo(HaveOccurred())

		wd, err = working_dir.NewWorkingDir(workingDir)
		Expect(err).NotTo(HaveOccurred())
		_, err = wd.Sweep()
		Expect(err).NotTo(HaveOccurred())

		store = artifact.NewStore(wd)

		sampleRate = 16000
		target = audio.Samples{Data: []int{100, 200, 300, 400}, Channels: 1, BitDepth: 16}
		residual = audio.Samples{Data: []int{-7, -7, -7, -7}, Channels: 1, BitDepth: 16}

		fakeSession = &separationfakes.FakeModelSession{}
		fakeSession.LoadedReturns(true)
		fakeSession.SeparateCalls(func(_ context.Context, input *artifact.Artifact, _ string, _ model.Options) (session.Result, error) {
			contents, err := input.ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(contents).To(Equal(inputPayload))

			return session.Result{
				Target:     target,
				Residual:   residual,
				SampleRate: sampleRate,
			}, nil
		})

		pipeline = separation.NewPipeline(fakeSession, store, codec)

		inputPayload = encodeWAV(audio.Silence(sampleRate, 1), sampleRate)
		request = separation.Request{
			AudioData:   base64.StdEncoding.EncodeToString(inputPayload),
			Description: "A man speaking",
		}
	})

	AfterEach(func() {
		_ = os.RemoveAll(scratchDir)
	})

	Describe("SeparateTarget", func() {
		var response separation.Response

		JustBeforeEach(func() {
			response = pipeline.SeparateTarget(context.Background(), request)
		})

		Describe("Happy path", func() {
			It("succeeds", func() {
				Expect(response.Success).To(BeTrue())
				Expect(response.StatusCode).To(Equal(200))
				Expect(response.Error).To(BeEmpty())
			})

			It("returns the target track at the session's sample rate", func() {
				Expect(response.SampleRate).To(Equal(sampleRate))
				Expect(decodeResponse(response).Data).To(Equal(target.Data))
			})

			It("separates with the default options", func() {
				Expect(fakeSession.SeparateCallCount()).To(Equal(1))
				_, _, description, options := fakeSession.SeparateArgsForCall(0)
				Expect(description).To(Equal("A man speaking"))
				Expect(options).To(Equal(model.DefaultOptions()))
			})

			It("releases every artifact", func() {
				for _, path := range separatedPaths() {
					Expect(path).NotTo(BeAnExistingFile())
				}
				Expect(tempEntries()).To(BeEmpty())
			})
		})

		Describe("With options", func() {
			BeforeEach(func() {
				predictSpans := true
				rerankingCandidates := 8
				request.PredictSpans = &predictSpans
				request.RerankingCandidates = &rerankingCandidates
			})

			It("forwards them to the session", func() {
				_, _, _, options := fakeSession.SeparateArgsForCall(0)
				Expect(options).To(Equal(model.Options{PredictSpans: true, RerankingCandidates: 8}))
			})
		})

		Describe("With a non-positive reranking candidate count", func() {
			BeforeEach(func() {
				rerankingCandidates := 0
				request.RerankingCandidates = &rerankingCandidates
			})

			It("is rejected", func() {
				Expect(response.StatusCode).To(Equal(400))
				Expect(response.Error).To(ContainSubstring("reranking_candidates"))
				Expect(fakeSession.SeparateCallCount()).To(BeZero())
			})
		})

		Describe("Validation", func() {
			Describe("When audio_data is missing", func() {
				BeforeEach(func() {
					request.AudioData = ""
				})

				It("is rejected", func() {
					Expect(response.Success).To(BeFalse())
					Expect(response.StatusCode).To(Equal(400))
					Expect(response.Error).To(Equal("audio_data is required"))
				})
			})

			Describe("When description is empty", func() {
				BeforeEach(func() {
					request.Description = ""
				})

				It("is rejected without calling the model", func() {
					Expect(response.Success).To(BeFalse())
					Expect(response.StatusCode).To(Equal(400))
					Expect(response.Error).To(Equal("description is required"))
					Expect(fakeSession.SeparateCallCount()).To(BeZero())
				})

				It("acquires nothing", func() {
					Expect(tempEntries()).To(BeEmpty())
				})
			})

			Describe("When both are missing", func() {
				BeforeEach(func() {
					request.AudioData = ""
					request.Description = ""
				})

				It("reports audio_data first", func() {
					Expect(response.StatusCode).To(Equal(400))
					Expect(response.Error).To(Equal("audio_data is required"))
				})
			})

			Describe("When audio_data is not base64", func() {
				BeforeEach(func() {
					request.AudioData = "definitely not base64!"
				})

				It("is rejected", func() {
					Expect(response.StatusCode).To(Equal(400))
					Expect(response.Error).To(Equal("audio_data is not valid base64"))
					Expect(fakeSession.SeparateCallCount()).To(BeZero())
				})
			})
		})

		Describe("When the model is not loaded", func() {
			BeforeEach(func() {
				fakeSession.LoadedReturns(false)
			})

			It("fails with a server error", func() {
				Expect(response.Success).To(BeFalse())
				Expect(response.StatusCode).To(Equal(500))
				Expect(response.Error).To(Equal(separation.ModelNotLoadedMessage))
			})

			It("does no inference work", func() {
				Expect(fakeSession.SeparateCallCount()).To(BeZero())
				Expect(tempEntries()).To(BeEmpty())
			})
		})

		Describe("When inference fails", func() {
			BeforeEach(func() {
				fakeSession.SeparateCalls(func(_ context.Context, input *artifact.Artifact, _ string, _ model.Options) (session.Result, error) {
					return session.Result{}, session.InferenceError{
						Message: "failed to separate audio: could not decode " + input.Path(),
						Cause:   errors.New("decode error"),
					}
				})
			})

			It("fails with the model's message", func() {
				Expect(response.StatusCode).To(Equal(500))
				Expect(response.Error).To(ContainSubstring("could not decode"))
			})

			It("does not leak the artifact path", func() {
				Expect(response.Error).To(ContainSubstring("<artifact>"))
				Expect(response.Error).NotTo(ContainSubstring(store.Dir()))
			})

			It("still releases the input artifact", func() {
				paths := separatedPaths()
				Expect(paths).To(HaveLen(1))
				Expect(paths[0]).NotTo(BeAnExistingFile())
				Expect(tempEntries()).To(BeEmpty())
			})
		})

		Describe("When the session reports the model unavailable mid-request", func() {
			BeforeEach(func() {
				fakeSession.SeparateReturns(session.Result{}, session.ErrModelUnavailable)
			})

			It("fails with the model not loaded message", func() {
				Expect(response.StatusCode).To(Equal(500))
				Expect(response.Error).To(Equal(separation.ModelNotLoadedMessage))
			})
		})

		Describe("When the session panics", func() {
			BeforeEach(func() {
				fakeSession.SeparateCalls(func(context.Context, *artifact.Artifact, string, model.Options) (session.Result, error) {
					panic("something awful")
				})
			})

			It("fails with a generic message", func() {
				Expect(response.Success).To(BeFalse())
				Expect(response.StatusCode).To(Equal(500))
				Expect(response.Error).To(Equal(separation.UnexpectedMessage))
			})

			It("still releases the input artifact", func() {
				Expect(tempEntries()).To(BeEmpty())
			})
		})

		Describe("When the session returns an unknown error", func() {
			BeforeEach(func() {
				fakeSession.SeparateReturns(session.Result{}, errors.New("secret internal state /etc/passwd"))
			})

			It("does not expose it", func() {
				Expect(response.StatusCode).To(Equal(500))
				Expect(response.Error).To(Equal(separation.UnexpectedMessage))
			})
		})

		Describe("One second of silence", func() {
			BeforeEach(func() {
				request.Description = "dog barking"
				target = audio.Silence(sampleRate, 1)
			})

			It("returns one second of silence encoded as WAV", func() {
				Expect(response.Success).To(BeTrue())
				Expect(response.SampleRate).To(Equal(sampleRate))
				Expect(response.AudioData).To(Equal(base64.StdEncoding.EncodeToString(encodeWAV(audio.Silence(sampleRate, 1), sampleRate))))
			})
		})
	})

	Describe("SeparateResidual", func() {
		var response separation.Response

		BeforeEach(func() {
			predictSpans := true
			rerankingCandidates := 8
			request.PredictSpans = &predictSpans
			request.RerankingCandidates = &rerankingCandidates
		})

		JustBeforeEach(func() {
			response = pipeline.SeparateResidual(context.Background(), request)
		})

		It("returns the residual track", func() {
			Expect(response.Success).To(BeTrue())
			Expect(decodeResponse(response).Data).To(Equal(residual.Data))
		})

		It("always separates with the default options", func() {
			_, _, _, options := fakeSession.SeparateArgsForCall(0)
			Expect(options).To(Equal(model.DefaultOptions()))
		})

		It("releases every artifact", func() {
			Expect(tempEntries()).To(BeEmpty())
		})

		Describe("When description is missing", func() {
			BeforeEach(func() {
				request.Description = ""
			})

			It("is rejected without calling the model", func() {
				Expect(response.StatusCode).To(Equal(400))
				Expect(response.Error).To(Equal("description is required"))
				Expect(fakeSession.SeparateCallCount()).To(BeZero())
			})
		})

		Describe("When audio_data is missing", func() {
			BeforeEach(func() {
				request.AudioData = ""
			})

			It("is rejected without calling the model", func() {
				Expect(response.Success).To(BeFalse())
				Expect(response.StatusCode).To(Equal(400))
				Expect(response.Error).To(Equal("audio_data is required"))
				Expect(fakeSession.SeparateCallCount()).To(BeZero())
			})

			It("acquires nothing", func() {
				Expect(tempEntries()).To(BeEmpty())
			})
		})

		Describe("When both are missing", func() {
			BeforeEach(func() {
				request.AudioData = ""
				request.Description = ""
			})

			It("reports audio_data first", func() {
				Expect(response.StatusCode).To(Equal(400))
				Expect(response.Error).To(Equal("audio_data is required"))
				Expect(fakeSession.SeparateCallCount()).To(BeZero())
			})
		})

		Describe("When the model is not loaded", func() {
			BeforeEach(func() {
				fakeSession.LoadedReturns(false)
			})

			It("fails with a server error", func() {
				Expect(response.StatusCode).To(Equal(500))
				Expect(response.Error).To(Equal(separation.ModelNotLoadedMessage))
			})
		})
	})

	Describe("Run", func() {
		It("rejects an unknown track and releases the input", func() {
			_, err := pipeline.Run(context.Background(), inputPayload, "A man speaking", model.DefaultOptions(), separation.Track("drums"))
			Expect(err).To(HaveOccurred())

			var failure separation.Failure
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.Kind).To(Equal(separation.UnexpectedFailure))
			Expect(tempEntries()).To(BeEmpty())
		})
	})

	Describe("ParseTrack", func() {
		It("defaults to the target track", func() {
			track, err := separation.ParseTrack("")
			Expect(err).NotTo(HaveOccurred())
			Expect(track).To(Equal(separation.TargetTrack))
		})

		It("parses the residual track", func() {
			track, err := separation.ParseTrack("Residual")
			Expect(err).NotTo(HaveOccurred())
			Expect(track).To(Equal(separation.ResidualTrack))
		})

		It("rejects anything else", func() {
			_, err := separation.ParseTrack("drums")
			Expect(err).To(HaveOccurred())
		})
	})
})
