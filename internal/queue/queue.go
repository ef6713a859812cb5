package queue

import (
	"log"
	"sync"
)

// Message 定义消息结构
type Message struct {
	Topic string
	Data  any
}

// Queue 进程内按 topic 划分的消息队列
type Queue struct {
	topics map[string]chan Message
	lock   sync.RWMutex
}

// GlobalQueue 全局变量
var GlobalQueue = NewQueue()

func NewQueue() *Queue {
	return &Queue{
		topics: make(map[string]chan Message),
	}
}

func (q *Queue) CheckTopic(topic string) chan Message {
	q.lock.RLock()
	ch, exists := q.topics[topic]
	q.lock.RUnlock()

	if exists {
		return ch
	}

	q.lock.Lock()
	defer q.lock.Unlock()

	ch, exists = q.topics[topic]
	if !exists {
		ch = make(chan Message, 256)
		q.topics[topic] = ch
	}
	return ch
}

// Produce 生产消息，队列满了直接丢弃并记日志
func (q *Queue) Produce(topic string, data any) {
	ch := q.CheckTopic(topic)

	select {
	case ch <- Message{Topic: topic, Data: data}:
	default:
		log.Printf("queue %s full, message dropped\n", topic)
	}
}

// RegisterConsumer 注册消费者，支持 n 个并发消费者。
// handler panic 只记日志，不影响其余消息
func (q *Queue) RegisterConsumer(topic string, handler func(Message), n int) {
	ch := q.CheckTopic(topic)

	for i := 0; i < n; i++ {
		go func() {
			for msg := range ch {
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Println("Consumer panic:", r)
						}
					}()
					handler(msg)
				}()
			}
		}()
	}
}
