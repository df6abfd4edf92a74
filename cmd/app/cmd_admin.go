package main

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Fivegen-LLC/qoe-monitor/infrastructure"
	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/formatter"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func newConfigCommand(kernel *infrastructure.Kernel) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Client sampling configuration",
	}

	get := &cobra.Command{
		Use:     "get",
		Short:   "Show the client configuration",
		Args:    cobra.NoArgs,
		PreRunE: requireAuth(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := kernel.InjectClientConfigService().Get(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.ClientConfig(cfg))
			return nil
		},
	}

	var (
		samplingInterval int
		uploadInterval   int
		enabledTests     []string
		pingTarget       string
		dnsServer        string
		httpTestURL      string
		smsRecipient     string
		collectCellInfo  bool
	)

	set := &cobra.Command{
		Use:     "set",
		Short:   "Update the client configuration",
		Args:    cobra.NoArgs,
		PreRunE: requireAdmin(kernel),
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			var req entities.UpdateConfigRequest
			if flags.Changed("sampling-interval") {
				req.SamplingIntervalSec = &samplingInterval
			}
			if flags.Changed("upload-interval") {
				req.UploadIntervalSec = &uploadInterval
			}
			if flags.Changed("tests") {
				req.EnabledTests = &enabledTests
			}
			if flags.Changed("ping-target") {
				req.PingTarget = &pingTarget
			}
			if flags.Changed("dns-server") {
				req.DNSServer = &dnsServer
			}
			if flags.Changed("http-test-url") {
				req.HTTPTestURL = &httpTestURL
			}
			if flags.Changed("sms-recipient") {
				req.SMSRecipient = &smsRecipient
			}
			if flags.Changed("collect-cell-info") {
				req.CollectCellInfo = &collectCellInfo
			}

			cfg, err := kernel.InjectClientConfigService().Update(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.ClientConfig(cfg))
			return nil
		},
	}

	set.Flags().IntVar(&samplingInterval, "sampling-interval", 0, "sampling interval in seconds")
	set.Flags().IntVar(&uploadInterval, "upload-interval", 0, "upload interval in seconds")
	set.Flags().StringSliceVar(&enabledTests, "tests", nil, "enabled tests: network, http, sms, dns, ping")
	set.Flags().StringVar(&pingTarget, "ping-target", "", "ping test host")
	set.Flags().StringVar(&dnsServer, "dns-server", "", "dns test server ip")
	set.Flags().StringVar(&httpTestURL, "http-test-url", "", "http test url")
	set.Flags().StringVar(&smsRecipient, "sms-recipient", "", "sms test recipient in E.164")
	set.Flags().BoolVar(&collectCellInfo, "collect-cell-info", false, "collect cell identity")

	cmd.AddCommand(get, set)
	return cmd
}

func newUsersCommand(kernel *infrastructure.Kernel) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "users",
		Short:             "Manage dashboard accounts",
		PersistentPreRunE: requireAdmin(kernel),
	}

	var page, pageSize int
	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			usersPage, err := kernel.InjectUsersService().List(cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Users(usersPage))
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 1, "page number")
	list.Flags().IntVar(&pageSize, "page-size", constants.DefaultUsersPerPage, "accounts per page")

	var req entities.CreateUserRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := kernel.InjectUsersService().Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %d (%s, %s)\n", user.ID, user.Email, user.Role)
			return nil
		},
	}
	create.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	create.Flags().StringVarP(&req.Password, "password", "p", "", "account password, 8 characters or more")
	create.Flags().StringVar(&req.Role, "role", constants.RoleUser, "admin or user")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			if err = kernel.InjectUsersService().Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, create, remove)
	return cmd
}

func newSettingsCommand(kernel *infrastructure.Kernel) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "settings",
		Short:             "Alert thresholds and local preferences",
		PersistentPreRunE: requireAdmin(kernel),
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := kernel.InjectSettingsService().Get()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Settings(settings))
			return nil
		},
	}

	var (
		rule     entities.ThresholdConfig
		operator string
		severity string
	)
	setThreshold := &cobra.Command{
		Use:   "set-threshold",
		Short: "Add or replace an alert threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rule.Operator = entities.ThresholdOperator(operator)
			rule.Severity = entities.Severity(severity)

			saved, err := kernel.InjectSettingsService().UpsertThreshold(rule)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved threshold %s (%s)\n", saved.ID, saved.Name)
			return nil
		},
	}
	setThreshold.Flags().StringVar(&rule.ID, "id", "", "threshold id, a new one is generated when empty")
	setThreshold.Flags().StringVar(&rule.Name, "name", "", "display name")
	setThreshold.Flags().StringVar(&rule.Metric, "metric", "", "downloadSpeed, uploadSpeed, latency, availability, signalStrength or signalQuality")
	setThreshold.Flags().StringVar(&operator, "operator", string(entities.OperatorGT), "gt, lt, eq, gte or lte")
	setThreshold.Flags().Float64Var(&rule.Value, "value", 0, "threshold value")
	setThreshold.Flags().StringVar(&severity, "severity", string(entities.SeverityWarning), "info, warning or critical")
	setThreshold.Flags().BoolVar(&rule.Enabled, "enabled", true, "evaluate this threshold")

	deleteThreshold := &cobra.Command{
		Use:   "delete-threshold <id>",
		Short: "Delete an alert threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kernel.InjectSettingsService().DeleteThreshold(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted threshold %s\n", args[0])
			return nil
		},
	}

	importThresholds := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import alert thresholds from a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported, err := kernel.InjectSettingsService().ImportThresholds(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s\n", imported, lo.Ternary(imported == 1, "threshold", "thresholds"))
			return nil
		},
	}

	setSyncInterval := &cobra.Command{
		Use:   "set-sync-interval <minutes>",
		Short: "Set the data sync interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid minutes %q", args[0])
			}

			if err = kernel.InjectSettingsService().SetSyncInterval(minutes * 60); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sync interval set to %d min\n", minutes)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := kernel.InjectSettingsService().Reset()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Settings(settings))
			return nil
		},
	}

	cmd.AddCommand(show, setThreshold, deleteThreshold, importThresholds, setSyncInterval, reset)
	return cmd
}
