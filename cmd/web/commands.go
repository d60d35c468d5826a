package main

import (
	"fmt"
	"path/filepath"

	"github.com/ericoliveiras/presente/internal/config"
	"github.com/ericoliveiras/presente/internal/handler"
	"github.com/ericoliveiras/presente/internal/logger"
	"github.com/ericoliveiras/presente/internal/wish"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "presente",
	Short:        "Formulário de presente: diga o que você quer ganhar",
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe o servidor web do formulário",
	RunE:  runServe,
}

var precoCmd = &cobra.Command{
	Use:   "preco <digitos>",
	Short: "Mostra como um preço digitado aparece no formulário",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, ok := wish.ParsePrice(args[0])
		if !ok {
			return fmt.Errorf("nenhum dígito em %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.2f\t%s\n", amount, wish.FormatPrice(amount))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, precoCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	l := logger.New(cfg.LogLevel)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true

	giftHandler := &handler.GiftHandler{
		Store:     store,
		Submitter: wish.NewSubmitter(l),
		Log:       l,
	}

	router := gin.Default()
	router.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))
	giftHandler.Routes(router)

	l.Infof("Servidor rodando na porta %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("falha ao iniciar o servidor: %w", err)
	}
	return nil
}
