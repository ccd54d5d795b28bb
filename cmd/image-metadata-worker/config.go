package main

import (
	"flag"
	"log"
)

// ServiceConfig defines all of the service configuration parameters
type ServiceConfig struct {
	InQueueName       string // SQS queue receiving the upload notifications
	AuditQueueName    string // SQS queue receiving audit copies of recorded objects (optional)
	MessageBucketName string // bucket used by the SQS library for oversize messages
	TableName         string // table receiving the metadata records
	PollTimeOut       int64  // queue wait time (in seconds)
	Workers           int    // number of notification workers
	WorkerQueueSize   int    // worker queue size
	DiagnosticsPort   int    // port for the diagnostics endpoints
}

// LoadConfiguration will load the service configuration from the
// commandline and return a pointer to it. Any failures are fatal.
func LoadConfiguration() *ServiceConfig {

	log.Printf("Loading configuration...")

	var cfg ServiceConfig
	flag.StringVar(&cfg.InQueueName, "inqueue", "", "Inbound notification queue name")
	flag.StringVar(&cfg.AuditQueueName, "auditqueue", "", "Audit queue name (optional)")
	flag.StringVar(&cfg.MessageBucketName, "messagebucket", "", "Oversize message bucket name (optional)")
	flag.StringVar(&cfg.TableName, "table", "", "Metadata table name")
	flag.Int64Var(&cfg.PollTimeOut, "polltimeout", 15, "Poll timeout (in seconds)")
	flag.IntVar(&cfg.Workers, "workers", 1, "Number of workers")
	flag.IntVar(&cfg.WorkerQueueSize, "workerqueue", 1, "Worker queue size")
	flag.IntVar(&cfg.DiagnosticsPort, "diagport", 8080, "Diagnostics endpoint port")

	flag.Parse()

	if len(cfg.InQueueName) == 0 {
		log.Fatalf("InQueueName cannot be blank")
	}

	if len(cfg.TableName) == 0 {
		log.Fatalf("TableName cannot be blank")
	}

	log.Printf("[CONFIG] InQueueName          = [%s]", cfg.InQueueName)
	log.Printf("[CONFIG] AuditQueueName       = [%s]", cfg.AuditQueueName)
	log.Printf("[CONFIG] MessageBucketName    = [%s]", cfg.MessageBucketName)
	log.Printf("[CONFIG] TableName            = [%s]", cfg.TableName)
	log.Printf("[CONFIG] PollTimeOut          = [%d]", cfg.PollTimeOut)
	log.Printf("[CONFIG] Workers              = [%d]", cfg.Workers)
	log.Printf("[CONFIG] WorkerQueueSize      = [%d]", cfg.WorkerQueueSize)
	log.Printf("[CONFIG] DiagnosticsPort      = [%d]", cfg.DiagnosticsPort)

	return &cfg
}

//
// end of file
//
