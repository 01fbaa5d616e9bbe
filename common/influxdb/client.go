package influxdb

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/influxdata/influxdb/client/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/botarena/botarena/common/utils"
)

// Client reports application metrics to InfluxDB. Without INFLUXDB_ADDR and
// INFLUXDB_DB it runs as a stub that only logs the points.
type Client struct {
	isStub bool

	batchpointsClient client.BatchPoints
	appName           string
	influxdbClient    client.Client
	tickerChannel     *time.Ticker
	done              chan struct{}
	log               zerolog.Logger
}

func createHttpClient(addr string) (client.Client, error) {
	return client.NewHTTPClient(client.HTTPConfig{
		Addr: addr,
	})
}

func createBatchPoints(db string) (client.BatchPoints, error) {
	return client.NewBatchPoints(client.BatchPointsConfig{
		Database: db,
	})
}

func NewClient(appName string) (*Client, error) {
	influxdbAddr := os.Getenv("INFLUXDB_ADDR")
	influxdbDb := os.Getenv("INFLUXDB_DB")

	stubClient := &Client{
		isStub: true,

		tickerChannel: time.NewTicker(5 * time.Second),
		done:          make(chan struct{}),
		appName:       appName,
		log:           utils.Logger("influxdb"),
	}

	if influxdbAddr == "" && influxdbDb == "" {
		stubClient.log.Info().Msg("No client has been configured")
		return stubClient, nil
	}

	influxdbClient, clientErr := createHttpClient(influxdbAddr)
	if clientErr != nil {
		return stubClient, errors.Wrap(clientErr, "cannot create influxdb http client")
	}

	batchpointsClient, batchpointsErr := createBatchPoints(influxdbDb)
	if batchpointsErr != nil {
		return stubClient, errors.Wrap(batchpointsErr, "cannot create influxdb batch")
	}

	stubClient.log.Info().Str("addr", influxdbAddr).Msg("Influxdb reporting is enabled")

	stubClient.isStub = false
	stubClient.influxdbClient = influxdbClient
	stubClient.batchpointsClient = batchpointsClient

	return stubClient, nil
}

func (c *Client) IsStub() bool {
	return c.isStub
}

func (c *Client) WriteAppMetric(name string, fields map[string]interface{}) {
	if c.isStub {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if vs, isInt := fields[k].(int); isInt {
				parts = append(parts, k+"="+strconv.Itoa(vs))
			}
		}

		c.log.Debug().Str("metric", name).Msg(strings.Join(parts, " "))
		return
	}

	tags := map[string]string{"app": c.appName}

	pt, err := client.NewPoint(name, tags, fields, time.Now())
	if err != nil {
		c.log.Warn().Err(err).Str("metric", name).Msg("dropping invalid point")
		return
	}

	c.batchpointsClient.AddPoint(pt)
	if err := c.influxdbClient.Write(c.batchpointsClient); err != nil {
		c.log.Warn().Err(err).Str("metric", name).Msg("cannot write point")
	}
}

// Loop calls fn on every report tick until TearDown.
func (c *Client) Loop(fn func()) {
	go func() {
		for {
			select {
			case <-c.tickerChannel.C:
				fn()
			case <-c.done:
				return
			}
		}
	}()
}

func (c *Client) TearDown() {
	c.tickerChannel.Stop()

	select {
	case <-c.done:
	default:
		close(c.done)
	}

	if c.influxdbClient != nil {
		c.influxdbClient.Close()
	}
}
