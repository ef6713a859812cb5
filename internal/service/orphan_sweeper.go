package service

import (
	"log"
	"time"
)

// ClearOrphanFiles 清理上传目录里的孤儿文件：落盘成功但库里没有
// 对应记录（通常是上传流程在写库一步失败），超过保留期就删
func ClearOrphanFiles(fs FileService, files FileStore, olderThan time.Duration) error {
	entries, err := fs.List()
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-olderThan)

	for _, f := range entries {
		if f.IsDir || !f.ModTime.Before(cutoff) {
			continue
		}
		exists, err := files.ExistsPath(fs.PublicPath(f.Name))
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := fs.Delete(f.Name); err != nil {
			log.Println("孤儿文件删除失败:", f.Name, err)
		}
	}

	return nil
}

func RegisterOrphanSweeper(fs FileService, files FileStore, olderThan, interval time.Duration) {
	RegisterPeriodicService(func() {
		if err := ClearOrphanFiles(fs, files, olderThan); err != nil {
			log.Printf("Failed to clear orphan files: %s", err)
		}
	}, interval)
}
