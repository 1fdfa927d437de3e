package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [sourceDir...]",
		Short: "Compile Chisel sources against resolved package dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := c.app.LoadConfig(configPath)
			if err != nil {
				return err
			}

			// Explicit flags override build-file values.
			flags := cmd.Flags()
			if len(args) > 0 {
				cfg.SourceDirs = args
			}
			if flags.Changed("build-dir") {
				cfg.BuildDir, _ = flags.GetString("build-dir")
			}
			if flags.Changed("resource-dir") {
				cfg.ResourceDirs, _ = flags.GetStringArray("resource-dir")
			}
			if flags.Changed("depends") {
				cfg.Depends, _ = flags.GetString("depends")
			}
			if flags.Changed("pkg-db-dir") {
				cfg.PkgDBDir, _ = flags.GetString("pkg-db-dir")
			}
			if flags.Changed("pkg-jar-dir") {
				cfg.PkgJarDir, _ = flags.GetString("pkg-jar-dir")
			}
			if flags.Changed("classpath") {
				cfg.Classpath, _ = flags.GetStringArray("classpath")
			}
			if flags.Changed("scalac-opt") {
				cfg.ScalacOpts, _ = flags.GetStringArray("scalac-opt")
			}
			if flags.Changed("output-jar") {
				cfg.OutputJar, _ = flags.GetString("output-jar")
			}
			if flags.Changed("link-jars") {
				cfg.LinkJars, _ = flags.GetBool("link-jars")
			}
			if flags.Changed("entry-point") {
				cfg.EntryPoint, _ = flags.GetString("entry-point")
			}
			cfg.Force, _ = flags.GetBool("force")

			return c.app.Build(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("build-dir", "", "working directory for build output, created if missing")
	cmd.Flags().StringArray("resource-dir", nil, "resource directory copied into the build directory (repeatable)")
	cmd.Flags().String("depends", "", "Portage DEPEND-style list of exact-version package dependencies")
	cmd.Flags().String("pkg-db-dir", "", "root of the Portage installed-package database")
	cmd.Flags().String("pkg-jar-dir", "", "directory holding installed package jars")
	cmd.Flags().StringArray("classpath", nil, "caller classpath jar; overrides a package jar with the same base filename (repeatable)")
	cmd.Flags().StringArray("scalac-opt", nil, "extra scalac option, flag marker added automatically (repeatable)")
	cmd.Flags().String("output-jar", "", "path of the output jar")
	cmd.Flags().Bool("link-jars", true, "extract dependency jar contents into the output jar")
	cmd.Flags().String("entry-point", "", "Main-Class recorded in the output jar")
	cmd.Flags().Bool("force", false, "build even when the recorded fingerprint is current")

	return cmd
}
