package server

import "github.com/gofiber/fiber/v2"

const graphiqlPage = `<!DOCTYPE html>
<html>
  <head>
    <title>Bulletin GraphQL</title>
    <style>
      body { margin: 0; }
      #graphiql { height: 100vh; }
    </style>
    <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
  </head>
  <body>
    <div id="graphiql">Loading...</div>
    <script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
    <script>
      const root = ReactDOM.createRoot(document.getElementById('graphiql'));
      root.render(
        React.createElement(GraphiQL, {
          fetcher: GraphiQL.createFetcher({ url: '/graphql' }),
        })
      );
    </script>
  </body>
</html>`

// Playground serves the GraphiQL IDE for interactive exploration.
func (s *Server) Playground(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(graphiqlPage)
}
