package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vishxesh10/InsureMate-LIve/pkg/tlsutil"
)

func newCertsCmd() *cobra.Command {
	var (
		outDir   string
		hosts    []string
		validFor time.Duration
	)

	cmd := &cobra.Command{
		Use:   "certs",
		Short: "Generate a development CA and gRPC server certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tlsutil.WriteDevCertificates(hosts, outDir, validFor); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wrote %s and %s\n",
				filepath.Join(outDir, tlsutil.CAFile),
				filepath.Join(outDir, tlsutil.ServerFile),
			)
			fmt.Fprintf(out, "GRPC_TLS_CERT_FILE=%s GRPC_TLS_KEY_FILE=%s\n",
				filepath.Join(outDir, tlsutil.ServerFile),
				filepath.Join(outDir, tlsutil.ServerKeyFile),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "certs", "output directory")
	cmd.Flags().StringSliceVar(&hosts, "hosts", []string{"localhost", "127.0.0.1"}, "server certificate hosts")
	cmd.Flags().DurationVar(&validFor, "valid-for", 365*24*time.Hour, "certificate validity")
	return cmd
}
