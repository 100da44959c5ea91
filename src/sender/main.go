package main

import (
	"fmt"
	"os"

	"sam-audio-server/src/application/jobs/separate"
	"sam-audio-server/src/application/publish"
	"sam-audio-server/src/lib/cerr"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

// sender puts a single separate_audio job on the queue, for trying out a
// running worker by hand.
func main() {
	var queueName string
	var track string

	cmd := &cobra.Command{
		Use:   "sender <source_url> <dest_url> <description>",
		Short: "Publish one separate_audio job",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rabbitURL := os.Getenv("RABBITMQ_URL")
			if rabbitURL == "" {
				return cerr.Error("RABBITMQ_URL is not set")
			}

			conn, err := amqp.Dial(rabbitURL)
			if err != nil {
				return err
			}
			defer conn.Close()

			publisher, err := publish.NewRabbitMQPublisher(conn, queueName)
			if err != nil {
				return err
			}
			defer publisher.Close()

			job, err := separate.CreateJobMessage(separate.JobParams{
				SourceURL:   args[0],
				DestURL:     args[1],
				Description: args[2],
				Track:       track,
			})
			if err != nil {
				return err
			}

			if err := publisher.Publish(job); err != nil {
				return err
			}

			fmt.Printf("Published message %s to %s\n", job.MessageId, queueName)
			return nil
		},
	}

	cmd.Flags().StringVar(&queueName, "queue", "separation_jobs", "Queue to publish to")
	cmd.Flags().StringVar(&track, "track", "target", "Track to keep: target or residual")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
