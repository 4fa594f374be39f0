package serve

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/joho/godotenv"
	cmdUtil "github.com/sparrowkv/sparrow/cmd/util"
	"github.com/sparrowkv/sparrow/lib/logger"
	"github.com/sparrowkv/sparrow/rpc/common"
	"github.com/sparrowkv/sparrow/rpc/server"
	"github.com/sparrowkv/sparrow/rpc/transport"
	"github.com/sparrowkv/sparrow/rpc/transport/tcp"
	"github.com/sparrowkv/sparrow/rpc/transport/unix"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the sparrow server",
		Long:    `Start the sparrow server with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is SPARROW_<flag> (e.g. SPARROW_ENDPOINT=0.0.0.0:6380)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(initConfig)

	// add flags
	key := "endpoint"
	ServeCmd.PersistentFlags().String(key, "0.0.0.0:6379", cmdUtil.WrapString("The address on which the server will listen (e.g. 0.0.0.0:6379, /tmp/sparrow.sock, ...)"))

	key = "transport"
	ServeCmd.PersistentFlags().String(key, "tcp", cmdUtil.WrapString("Transport to use (tcp, unix)"))

	key = "max-connections"
	ServeCmd.PersistentFlags().Int(key, 256, cmdUtil.WrapString("Advisory limit on concurrent connections. Exceeding it is logged, connections are still accepted"))

	key = "timeout"
	ServeCmd.PersistentFlags().Int64(key, 0, cmdUtil.WrapString("Per-operation socket timeout in seconds. 0 disables deadlines, idle connections then live until the peer closes them"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "read-buffer"
	ServeCmd.PersistentFlags().Int(key, 64, cmdUtil.WrapString("The size of the read buffer per connection (in KB)"))

	key = "write-buffer"
	ServeCmd.PersistentFlags().Int(key, 64, cmdUtil.WrapString("The size of the write buffer per connection (in KB)"))

	key = "tcp-nodelay"
	ServeCmd.PersistentFlags().Bool(key, true, cmdUtil.WrapString("Whether to enable TCP_NODELAY (only for tcp)"))

	key = "tcp-keepalive"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The keepalive interval in seconds, 0 disables it (only for tcp)"))

	key = "tcp-linger"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The linger time in seconds (only for tcp)"))

	key = "metrics-endpoint"
	ServeCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Optional address for a Prometheus metrics HTTP endpoint (e.g. 127.0.0.1:9100). Empty disables it"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	serveCmdConfig.Transport = common.TransportConfig{
		Endpoint:        viper.GetString("endpoint"),
		ReadBufferSize:  viper.GetInt("read-buffer") * 1024,
		WriteBufferSize: viper.GetInt("write-buffer") * 1024,
		TCPNoDelay:      viper.GetBool("tcp-nodelay"),
		TCPKeepAliveSec: viper.GetInt("tcp-keepalive"),
		TCPLingerSec:    viper.GetInt("tcp-linger"),
	}
	serveCmdConfig.MaxConnections = viper.GetInt("max-connections")
	serveCmdConfig.TimeoutSecond = viper.GetInt64("timeout")
	serveCmdConfig.LogLevel = viper.GetString("log-level")
	serveCmdConfig.MetricsEndpoint = viper.GetString("metrics-endpoint")

	return nil
}

// run starts the sparrow server
func run(_ *cobra.Command, _ []string) error {

	// parse the log level
	level, err := logger.ParseLevel(serveCmdConfig.LogLevel)
	if err != nil {
		return err
	}

	// Parse the transport
	var t transport.IServerTransport
	switch viper.GetString("transport") {
	case "tcp":
		t = tcp.NewTCPServerTransport(logger.New("transport", level))
	case "unix":
		t = unix.NewUnixServerTransport(logger.New("transport", level))
	default:
		return fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}

	// Optionally expose Prometheus metrics
	if endpoint := serveCmdConfig.MetricsEndpoint; endpoint != "" {
		go func() {
			sink := logger.New("metrics", level)
			mux := http.NewServeMux()
			mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
				metrics.WritePrometheus(w, true)
			})
			sink.Infof("Serving metrics on http://%s/metrics", endpoint)
			if err := http.ListenAndServe(endpoint, mux); err != nil {
				sink.Errorf("Metrics endpoint failed: %v", err)
			}
		}()
	}

	serv := server.NewServer(
		*serveCmdConfig,
		t,
		logger.New("server", level),
	)

	return serv.Serve()
}

// initConfig reads in serveCmdConfig file and ENV variables if set.
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("sparrow")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}
