package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type FileInfo struct {
	Name    string
	IsDir   bool
	ModTime time.Time
}

// FileService 定义存储接口
type FileService interface {
	// Put 保存文件，返回对外可访问的公开路径
	Put(fileName string, data []byte) (string, error)

	// Delete 删除指定文件
	Delete(fileName string) error

	// PublicPath 文件名对应的公开路径
	PublicPath(fileName string) string

	// DiskPath 文件名对应的本地磁盘路径
	DiskPath(fileName string) string

	// List 列出目录下所有文件名
	List() ([]FileInfo, error)
}

// LocalFileService 本地存储实现，注册静态路由对外提供文件
type LocalFileService struct {
	Route    string
	BasePath string
}

func NewLocalFileService(app fiber.Router, route string, basePath string) *LocalFileService {
	err := os.MkdirAll(basePath, os.ModePerm)
	if err != nil {
		return nil
	}
	app.Static(route, basePath)
	return &LocalFileService{Route: route, BasePath: basePath}
}

// Put 保存文件
func (l *LocalFileService) Put(fileName string, data []byte) (string, error) {
	fullPath := filepath.Join(l.BasePath, fileName)
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, data, os.ModePerm); err != nil {
		return "", err
	}

	return l.PublicPath(fileName), nil
}

// Delete 删除文件
func (l *LocalFileService) Delete(fileName string) error {
	fullPath := filepath.Join(l.BasePath, fileName)
	if _, err := os.Stat(fullPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return os.Remove(fullPath)
}

// PublicPath 拼出静态路由下的访问路径
func (l *LocalFileService) PublicPath(fileName string) string {
	return strings.ReplaceAll(filepath.Join(l.Route, fileName), "\\", "/")
}

// DiskPath 拼出磁盘路径
func (l *LocalFileService) DiskPath(fileName string) string {
	return filepath.Join(l.BasePath, fileName)
}

// List 列出目录下所有文件及修改时间
func (l *LocalFileService) List() ([]FileInfo, error) {
	info, err := os.Stat(l.BasePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s 不是目录", l.BasePath)
	}

	entries, err := os.ReadDir(l.BasePath)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, entry := range entries {
		fi, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Name:    entry.Name(),
			IsDir:   entry.IsDir(),
			ModTime: fi.ModTime(),
		})
	}

	return files, nil
}
