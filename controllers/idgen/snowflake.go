package idgen

import (
	"log"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}

// NewRecordID mints an opaque string id for log records created without one.
func NewRecordID() string {
	return strconv.FormatInt(GenerateID(), 10)
}
