package service

import (
	"log"
	"time"
)

// RegisterPeriodicService 按固定间隔在后台跑一个任务，
// 任务 panic 只记日志，不拖垮进程
func RegisterPeriodicService(fn func(), interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Println("Periodic service panic:", r)
					}
				}()
				fn()
			}()
		}
	}()
}
