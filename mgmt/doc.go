/*
Package mgmt implements the websocket client for the management state
service of edgesh devices. CLI plugins don't use this package directly;
they see only the session's state store and thus stay oblivious of how the
state values actually travel.

The state service speaks a simple request/response protocol over a
websocket: the client sends a JSON request naming a state path, the service
answers with a JSON response carrying either the value at that path or the
reason why there is none.
*/
package mgmt
