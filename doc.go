/*
Package edgesh discovers, constructs, orders, and finally runs the plugins
that make up the edgesh command line interface on Siemens industrial edge
devices. Plugins contribute the actual CLI commands; this package only makes
sure that they all get their chance to do so, and in the right order.

Plugins come from two sources: they are either compiled into the edgesh
binary and announce themselves via an entry point registry, or they are
loaded at runtime from plugin files dropped into well-known folders (see
DistroPluginFolder and friends). Use NewLoader for the compiled-in plugins
and NewThirdPartyLoader for the plugin files.

Some plugins build on top of other plugins, so they declare their
requirements (see RequiredPlugin) and the loader works out a suitable order:
a plugin always runs after all the plugins it requires. A requirement cycle
or a missing requirement cannot be fixed by ordering, of course; the loader
then complains loudly and falls back to the order of discovery, so that a
single broken plugin declaration does not take the whole CLI down.

In the same spirit, a plugin failing or even panicking in one of its
lifecycle callbacks gets reported and then skipped, while all other plugins
still run. The CLI is the primary means to manage an edge device; it must
come up even when individual plugins are beyond repair.
*/
package edgesh
