package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "rt_"

const (
	TABLE_RESOURCE = TableName("resource")
	TABLE_BOOKMARK = TableName("bookmark")
	TABLE_USER     = TableName("user")
)
