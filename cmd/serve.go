package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/invierte-coyoacan/invest-backend-go/internal/api"
	"github.com/invierte-coyoacan/invest-backend-go/internal/catalog"
	"github.com/invierte-coyoacan/invest-backend-go/internal/config"
	"github.com/invierte-coyoacan/invest-backend-go/internal/database"
	"github.com/invierte-coyoacan/invest-backend-go/internal/dataset"
	"github.com/invierte-coyoacan/invest-backend-go/internal/repository"
	"github.com/invierte-coyoacan/invest-backend-go/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 加载配置
		cfg := config.Load()

		// 初始化数据库
		if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
			return err
		}
		defer database.Close()

		cat, err := catalog.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}

		// 数据集按进程缓存，首次访问时加载
		cache := dataset.NewCache(repository.NewPropertyRepository(database.GetDB()))
		exploreService := service.NewExploreService(cache, cat)

		// 初始化路由
		router := api.SetupRouter(cfg, cache, exploreService)

		// 启动服务器
		log.Printf("Server starting on port %s", cfg.Port)
		return router.Run(cfg.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
