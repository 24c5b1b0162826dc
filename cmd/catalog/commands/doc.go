// Package commands defines the catalog CLI and wires its dependency graph.
//
// Commands
//
//   - serve          Run the HTTP view gateway
//   - products       Load the product list and print every transition
//   - product <id>   Load one product and print every transition
//   - ping           Report whether the product backend is reachable
//
// # Implementation
//
// Every command builds the same fx graph (config, logger, product client,
// repository, catalog service). serve adds the HTTP delivery and blocks;
// the other commands start the graph, act as a terminal renderer and stop it
// once the state settles.
package commands
