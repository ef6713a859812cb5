package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

func GetFileExt(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}

// IsPDF 按扩展名判断是否为 PDF 文件
func IsPDF(fileName string) bool {
	return GetFileExt(fileName) == ".pdf"
}

// SanitizeFileName 去掉路径部分并把连续空白折叠成下划线，
// 保证落盘文件名可以直接拼进 URL
func SanitizeFileName(fileName string) string {
	base := filepath.Base(fileName)
	return whitespacePattern.ReplaceAllString(base, "_")
}
