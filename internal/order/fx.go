package order

import (
	"hash/fnv"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/tikitihq/tikiti/internal/order/service"
	"go.uber.org/fx"
)

// newSnowflakeNode derives the node id from the hostname so replicas do
// not mint colliding payment references and ticket serials.
func newSnowflakeNode() (*snowflake.Node, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "tikiti"
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	return snowflake.NewNode(int64(h.Sum32() % 1024))
}

var Module = fx.Module("order.service",
	fx.Provide(
		newSnowflakeNode,
		service.NewService,
	),
)
