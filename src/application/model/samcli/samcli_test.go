package samcli_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/executor/executorfakes"
	"sam-audio-server/src/application/integration_test/dummy"
	"sam-audio-server/src/application/model"
	"sam-audio-server/src/application/model/samcli"
	"sam-audio-server/src/lib/working_dir"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("Separator CLI model", func() {
	var (
		wd            working_dir.WorkingDir
		dummyExecutor *dummy.SeparatorExecutor
		loader        samcli.Loader
		codec         audio.WAVCodec
	)

	BeforeEach(func() {
		var err error
		wd, err = working_dir.NewWorkingDir(workingDir)
		Expect(err).NotTo(HaveOccurred())

		dummyExecutor = dummy.NewDummySeparatorExecutor()
		dummyExecutor.Device = "cuda"
		dummyExecutor.SampleRate = 48000
		loader = samcli.NewLoader("/somewhere/sam-audio", "", wd, dummyExecutor, codec)
	})

	Describe("Load", func() {
		var (
			loadedModel  model.Model
			preprocessor model.Preprocessor
			err          error
		)

		JustBeforeEach(func() {
			loadedModel, preprocessor, err = loader.Load(context.Background(), "facebook/sam-audio-large")
		})

		Describe("Happy path", func() {
			It("succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("reports the device and sample rate from the separator", func() {
				Expect(loadedModel.Device()).To(Equal("cuda"))
				Expect(preprocessor.SampleRate()).To(Equal(48000))
			})

			It("asks for the configured model with an auto device", func() {
				calls := dummyExecutor.CallsTo("info")
				Expect(calls).To(HaveLen(1))
				Expect(dummy.OptionValue(calls[0], "--model")).To(Equal("facebook/sam-audio-large"))
				Expect(dummy.OptionValue(calls[0], "--device")).To(Equal("auto"))
			})
		})

		Describe("When the model cannot be fetched", func() {
			BeforeEach(func() {
				dummyExecutor.Unavailable = true
			})

			It("returns an error carrying the separator output", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("access to model is restricted"))
			})
		})

		Describe("When the separator prints garbage", func() {
			var fakeExecutor *executorfakes.FakeExecutor

			BeforeEach(func() {
				fakeCommand := &executorfakes.FakeCommand{}
				fakeCommand.CombinedOutputReturns([]byte("warming up\nnot json"), nil)
				fakeExecutor = &executorfakes.FakeExecutor{}
				fakeExecutor.CommandContextReturns(fakeCommand)
				loader = samcli.NewLoader("/somewhere/sam-audio", "cpu", wd, fakeExecutor, codec)
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})

			It("passes the device hint through", func() {
				_, _, args := fakeExecutor.CommandContextArgsForCall(0)
				Expect(dummy.OptionValue(args, "--device")).To(Equal("cpu"))
			})
		})

		Describe("When the separator reports a zero sample rate", func() {
			BeforeEach(func() {
				dummyExecutor.SampleRate = 0
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Separate", func() {
		var (
			loadedModel  model.Model
			preprocessor model.Preprocessor
			inputPath    string
			input        audio.Samples
			options      model.Options

			tracks model.Tracks
			err    error
		)

		BeforeEach(func() {
			var loadErr error
			loadedModel, preprocessor, loadErr = loader.Load(context.Background(), "facebook/sam-audio-large")
			Expect(loadErr).NotTo(HaveOccurred())

			input = audio.Samples{
				Data:     []int{10, -20, 30, -40},
				Channels: 1,
				BitDepth: 16,
			}
			inputPath = filepath.Join(wd.Root(), "input.wav")
			Expect(audio.EncodeFile(codec, inputPath, input, 48000)).To(Succeed())

			options = model.DefaultOptions()
		})

		AfterEach(func() {
			_ = os.Remove(inputPath)
		})

		JustBeforeEach(func() {
			batch, processErr := preprocessor.Process(context.Background(), inputPath, "dog barking")
			Expect(processErr).NotTo(HaveOccurred())

			tracks, err = loadedModel.Separate(context.Background(), batch.To("cuda"), options)
		})

		It("succeeds", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("decodes both tracks", func() {
			Expect(tracks.Target.Data).To(Equal([]int{10, -20, 30, -40}))
			Expect(tracks.Residual.Data).To(Equal([]int{-10, 20, -30, 40}))
		})

		It("always runs in inference mode with default options", func() {
			calls := dummyExecutor.CallsTo("separate")
			Expect(calls).To(HaveLen(1))
			Expect(dummy.HasFlag(calls[0], "--inference-mode")).To(BeTrue())
			Expect(dummy.HasFlag(calls[0], "--predict-spans")).To(BeFalse())
			Expect(dummy.OptionValue(calls[0], "--reranking-candidates")).To(Equal("1"))
			Expect(dummy.OptionValue(calls[0], "--description")).To(Equal("dog barking"))
			Expect(dummy.OptionValue(calls[0], "--device")).To(Equal("cuda"))
		})

		It("removes its output directory", func() {
			entries, readErr := os.ReadDir(wd.TempDir())
			Expect(readErr).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		Describe("With span prediction and reranking", func() {
			BeforeEach(func() {
				options = model.Options{
					PredictSpans:        true,
					RerankingCandidates: 4,
				}
			})

			It("forwards the options", func() {
				calls := dummyExecutor.CallsTo("separate")
				Expect(dummy.HasFlag(calls[0], "--predict-spans")).To(BeTrue())
				Expect(dummy.OptionValue(calls[0], "--reranking-candidates")).To(Equal("4"))
			})
		})

		Describe("When the separator writes at another sample rate", func() {
			BeforeEach(func() {
				Expect(audio.EncodeFile(codec, inputPath, input, 16000)).To(Succeed())
			})

			It("returns an error naming both rates", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("16000 Hz"))
				Expect(err.Error()).To(ContainSubstring("48000 Hz"))
			})

			It("still removes its output directory", func() {
				entries, readErr := os.ReadDir(wd.TempDir())
				Expect(readErr).NotTo(HaveOccurred())
				Expect(entries).To(BeEmpty())
			})
		})

		Describe("When the separator crashes", func() {
			BeforeEach(func() {
				dummyExecutor.Unavailable = true
			})

			It("returns an error with the separator output", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("CUDA out of memory"))
				Expect(errors.Is(err, dummy.ProcessCrashed)).To(BeTrue())
			})

			It("still removes its output directory", func() {
				entries, readErr := os.ReadDir(wd.TempDir())
				Expect(readErr).NotTo(HaveOccurred())
				Expect(entries).To(BeEmpty())
			})
		})
	})

	Describe("Preprocessor", func() {
		var preprocessor model.Preprocessor

		BeforeEach(func() {
			var err error
			_, preprocessor, err = loader.Load(context.Background(), "facebook/sam-audio-large")
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a missing file", func() {
			_, err := preprocessor.Process(context.Background(), filepath.Join(wd.Root(), "nope.wav"), "dog barking")
			Expect(err).To(HaveOccurred())
		})

		It("rejects a blank description", func() {
			path := filepath.Join(wd.Root(), "blank.wav")
			Expect(os.WriteFile(path, []byte("RIFF"), 0o600)).To(Succeed())
			defer os.Remove(path)

			_, err := preprocessor.Process(context.Background(), path, "   ")
			Expect(err).To(HaveOccurred())
		})
	})
})
