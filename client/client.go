package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"listq/config"
	"listq/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type Client struct {
	queue    *sqs.SQS
	queueUrl string
}

func NewClient(conf *config.Config) (*Client, error) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(conf.Aws.Region),
		Credentials: credentials.NewStaticCredentials(conf.Aws.ClientId, conf.Aws.ClientSecret, conf.Aws.ClientToken),
	}))

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, errors.Wrap(err, "cannot assign session with credentials")
	}

	return &Client{
		queue:    sqs.New(sess),
		queueUrl: conf.Aws.QueueUrl,
	}, nil
}

func (c *Client) SendMessage(item *types.Item) {
	id, _ := uuid.NewRandom()
	req, _ := json.Marshal(item)
	c.queue.SendMessage(&sqs.SendMessageInput{
		DelaySeconds:           aws.Int64(0),
		MessageBody:            aws.String(string(req)),
		QueueUrl:               &c.queueUrl,
		MessageGroupId:         aws.String("listq"),
		MessageDeduplicationId: aws.String(id.String()),
	})
}

// Keyed actions against the server's ordered store.

func (c *Client) AddItem(key, value string) {
	item := &types.Item{Action: types.AddItem, Key: key, Value: value}
	go c.SendMessage(item)
}

func (c *Client) GetItem(key string) {
	item := &types.Item{Action: types.GetItem, Key: key}
	go c.SendMessage(item)
}

func (c *Client) GetAllItems() {
	item := &types.Item{Action: types.GetAllItems}
	go c.SendMessage(item)
}

func (c *Client) RemoveItem(key string) {
	item := &types.Item{Action: types.RemoveItem, Key: key}
	go c.SendMessage(item)
}

// Positional actions against the server's sequence.

func (c *Client) AppendItem(value string) {
	item := &types.Item{Action: types.AppendItem, Value: value}
	go c.SendMessage(item)
}

func (c *Client) PrependItem(value string) {
	item := &types.Item{Action: types.PrependItem, Value: value}
	go c.SendMessage(item)
}

func (c *Client) PopFirst() {
	item := &types.Item{Action: types.PopFirst}
	go c.SendMessage(item)
}

func (c *Client) PopLast() {
	item := &types.Item{Action: types.PopLast}
	go c.SendMessage(item)
}

type ClientsManager struct {
	clients   map[string]*ClientUsage
	input     *os.File
	clientCfg *config.Config
	mux       sync.Mutex
	ctx       context.Context
	Cancel    context.CancelFunc
}

type ClientUsage struct {
	client   *Client
	lastUsed time.Time
}

func NewClientsManager(cfg *config.Config) (manager *ClientsManager, err error) {
	input := os.Stdin
	if len(cfg.ClientsInputPath) != 0 {
		input, err = os.Open(cfg.ClientsInputPath)
		if err != nil {
			return nil, err
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ClientsManager{
		clients:   make(map[string]*ClientUsage),
		input:     input,
		clientCfg: cfg,
		ctx:       ctx,
		Cancel:    cancel,
	}, nil
}

func (cm *ClientsManager) ListenClientActions() error {
	if cm.input == os.Stdin {
		fmt.Println("Write clients tasks here in format <clientId> <item>")
	}

	ticker := setInterval(cm.removeUnusedClients, 10)
	defer ticker.Stop()

	lines, errChan := SubscribeToFileInput(cm.input)

	for {
		select {
		case <-cm.ctx.Done():
			return nil
		case line := <-lines:
			if len(line) != 0 {
				go cm.processClientAction(line)
			}
		case err := <-errChan:
			if err != nil {
				return err
			}
		}
	}
}

func (cm *ClientsManager) removeUnusedClients() {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	for clientId, clientUsage := range cm.clients {
		if time.Since(clientUsage.lastUsed) > time.Second*10 {
			delete(cm.clients, clientId)
		}
	}

}

func (cm *ClientsManager) processClientAction(inputStr string) error {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	if len(inputStr) <= 1 {
		return errors.New("wrong input string, should be in format <clientId> <item>")
	}

	splittedInput := strings.Split(inputStr, " ")

	clientId := splittedInput[0]
	itemStr := strings.Join(splittedInput[1:], " ")

	var item *types.Item
	err := json.Unmarshal([]byte(itemStr), &item)
	if err != nil {
		return err
	}
	if client, ok := cm.clients[clientId]; ok {
		go client.client.SendMessage(item)
		client.lastUsed = time.Now()
		return nil
	}
	client, err := NewClient(cm.clientCfg)
	if err != nil {
		return err
	}
	cm.clients[clientId] = &ClientUsage{client, time.Now()}
	go client.SendMessage(item)
	return nil
}
