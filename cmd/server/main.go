package main

import (
	"fmt"
	"log"
	"os"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/config"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/database"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/importer"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/post"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/route"
)

// @title Social Media Posts Manager API
// @version 1.0
// @description 社交媒体帖子管理后端
// @BasePath /api
func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	// 2. 初始化数据库
	database.InitDatabase()
	db := database.GetDB()

	// 3. 帖子表为空且数据文件存在时自动导入
	seedIfEmpty()

	// 4. 设置路由并启动服务
	r := route.SetupRouter(db)
	r.Run(fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port))
}

// seedIfEmpty 首次启动时从 CSV 填充数据，失败仅告警不中断启动
func seedIfEmpty() {
	db := database.GetDB()

	count, err := post.NewPostRepository(db).Count()
	if err != nil {
		log.Printf("警告: 检查帖子数量失败: %v", err)
		return
	}
	if count > 0 {
		return
	}

	csvPath := config.Conf.CSV.Path
	if csvPath == "" {
		return
	}
	if _, err := os.Stat(csvPath); err != nil {
		log.Printf("数据文件 %s 不存在, 跳过自动导入", csvPath)
		return
	}

	log.Printf("帖子表为空, 从 %s 自动导入", csvPath)
	if _, err := importer.NewImportService(db).ImportCSV(csvPath); err != nil {
		log.Printf("警告: 自动导入失败: %v", err)
	}
}
