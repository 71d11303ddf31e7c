/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var emailDryRun bool
var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Emails the network summary report",
	Long:  `Builds the network and sends the summary statistics to the given address.`,
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := emailSummary(args[0], viper.GetString("from"), emailDryRun)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	addGraphFlags(emailCmd)
	emailCmd.Flags().BoolVar(&emailDryRun, "dry_run", false, "print the report instead of sending it")

	var from string
	emailCmd.Flags().StringVar(&from, "from", "", "From email address")
	viper.BindPFlag("from", emailCmd.Flags().Lookup("from"))

	var sendgridApiKey string
	emailCmd.Flags().StringVar(&sendgridApiKey, "sendgrid_api_key", "", "SendGrid API key")
	viper.BindPFlag("sendgrid_api_key", emailCmd.Flags().Lookup("sendgrid_api_key"))
}

func emailSummary(toAddress, fromAddress string, dryRun bool) error {
	report, err := summaryReport()
	if err != nil {
		return err
	}
	body := report.String()

	if dryRun {
		fmt.Printf("Would send to %s:\n%s", toAddress, body)
		return nil
	}

	from := mail.NewEmail("artist-network-tools", fromAddress)
	to := mail.NewEmail(toAddress, toAddress)
	subject := "Artist network summary"
	message := mail.NewSingleEmail(from, subject, to, body, "<pre>"+body+"</pre>")
	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))
	if _, err := client.Send(message); err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}

	fmt.Printf("Sent summary to %s\n", toAddress)
	return nil
}
