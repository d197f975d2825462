package groups_test

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-safe-go/api/shared"
	"github.com/multiversx/mx-chain-safe-go/config"
)

const (
	testChainID = "11155111"
	testSafeHex = "0x00000000000000000000000000000000000000Aa"
	testUserHex = "0x00000000000000000000000000000000000000bB"
)

var expectedErr = errors.New("expected error")

func init() {
	gin.SetMode(gin.TestMode)
}

type generalResponse struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
	Code  string      `json:"code"`
}

func startWebServer(group shared.GroupHandler, path string, apiConfig config.ApiRoutesConfig) *gin.Engine {
	ws := gin.New()
	ws.Use(cors.Default())
	routes := ws.Group(path)
	group.RegisterRoutes(routes, apiConfig, nil)

	return ws
}

func loadResponse(rsp io.Reader, destination interface{}) {
	jsonParser := json.NewDecoder(rsp)
	err := jsonParser.Decode(destination)
	if err != nil {
		panic(err)
	}
}

func formatExpectedErr(err, innerErr error) string {
	return err.Error() + ": " + innerErr.Error()
}

func jsonBody(content string) io.Reader {
	return strings.NewReader(content)
}

func getRoutesConfig(group string, paths ...string) config.ApiRoutesConfig {
	routes := make([]config.RouteConfig, 0, len(paths))
	for _, path := range paths {
		routes = append(routes, config.RouteConfig{Name: path, Open: true})
	}

	return config.ApiRoutesConfig{
		APIPackages: map[string]config.APIPackageConfig{
			group: {
				Routes: routes,
			},
		},
	}
}
