package main

import (
	"log"

	"github.com/lintang-b-s/ir-lab/pkg/di"
)

//	@title			IR Lab API
//	@version		1.0
//	@description	Information retrieval course labs: text preprocessing, boolean retrieval, vector space and BM25 ranking, relevance feedback, PageRank, spelling correction and color based image retrieval, plus the learning journey and course content.

//	@contact.name	lintang-b-s
//	@contact.url	https://github.com/lintang-b-s

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:6060
//	@BasePath	/
//	@schemes	http

func main() {
	server, cleanup, err := di.InitializeAPIServer()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Error(err.Error())
	}
}
