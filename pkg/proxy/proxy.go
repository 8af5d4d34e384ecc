/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package proxy

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"dji.tools/djilog/pkg/config"
	"dji.tools/djilog/pkg/keychain"
	"dji.tools/djilog/pkg/log"
)

// Server forwards keychain requests to the vendor endpoint, attaching
// the configured API key so browser consumers never hold it.
type Server struct {
	Config *config.Config
	Router *mux.Router

	transport keychain.Transport
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		Config:    cfg,
		transport: keychain.ReqTransport{},
	}
}

// Start blocks serving the proxy until the listener fails.
func (s *Server) Start() error {
	log.Debug("Starting keychain proxy: address: %s endpoint: %s",
		s.Config.ProxyConfig.Address, s.Config.KeychainConfig.Endpoint)
	s.configureRouter()
	httpServer := &http.Server{
		Handler: handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{"POST", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(s.Router),
		Addr: s.Config.ProxyConfig.Address,
	}
	return httpServer.ListenAndServe()
}

func (s *Server) configureRouter() {
	s.Router = mux.NewRouter()
	s.Router.HandleFunc("/keychains", s.handleKeychains()).Methods("POST")
}

func (s *Server) handleKeychains() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := &keychain.Request{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		headers := map[string]string{
			"Accept":  "*/*",
			"Api-Key": s.Config.KeychainConfig.ApiKey,
		}
		var resp keychain.Response
		status, err := s.transport.PostJSON(r.Context(), s.Config.KeychainConfig.Endpoint, headers, request, &resp)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		if status != http.StatusOK {
			http.Error(w, http.StatusText(status), status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(&resp); err != nil {
			log.Error("Proxy response write failed: %v", err)
		}
	}
}
