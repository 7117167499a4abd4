// 数据库结构管理工具：建表、重建与批量导入
package main

import (
	"log"

	"github.com/spf13/pflag"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/config"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/database"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/importer"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model"
)

func main() {
	var (
		drop       bool
		csvPath    string
		configPath string
	)
	pflag.BoolVar(&drop, "drop", false, "先删除所有表再重建")
	pflag.StringVar(&csvPath, "csv", "", "建表后从该CSV文件导入数据")
	pflag.StringVar(&configPath, "config", "config.yaml", "配置文件路径")
	pflag.Parse()

	config.MustLoad(configPath)
	database.InitDatabase()
	db := database.GetDB()

	if drop {
		log.Println("删除所有表...")
		if err := model.DropTables(db); err != nil {
			log.Fatalf("删除表失败: %v", err)
		}
		// InitDatabase 已建过表，删除后需要重建
		if err := model.InitTable(db); err != nil {
			log.Fatalf("重建表失败: %v", err)
		}
		log.Println("表结构重建完成")
	}

	if csvPath != "" {
		summary, err := importer.NewImportService(db).ImportCSV(csvPath)
		if err != nil {
			log.Fatalf("导入失败: %v", err)
		}
		log.Printf("导入完成: %d 位作者, %d 篇帖子, %d 个标签",
			summary.AuthorsCreated, summary.PostsImported, summary.TagsCreated)
	}
}
