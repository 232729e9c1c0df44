/*
Package cli defines the boundary between the edgesh command host and the
plugins providing the actual CLI commands: the command [Surface] plugins
register their commands into, the session [State] handed through to them,
and the [Output] machinery for rendering schema-shaped command results.

# Extension Points

Beyond the plugin lifecycle itself, the edgesh command host offers plugin
“group” extension points, invoked in this general order:

  - [SetupCLI]: for adding (sub) commands and CLI args to the (in [cobra]
    parlance) “root” command.
  - [CommandExamples]: for adding (more) examples to particular commands.
    These plugin functions are invoked after all [SetupCLI] plugins have
    been called, so that all commands have been registered by the time the
    examples should be extended with even more examples.
  - [BeforeCommand]: for checking and doing things just before the command
    runs.
  - [NewStore]: for creating a suitable management state store client,
    depending on CLI args.

Simply put, this plugin mechanism is compile-time only and allows so-called
plugins to register functions (and interface implementations) in what is
termed “groups”. The registered functions/interfaces then can be iterated
over, with control over the ordering of plugins. For more details about the
plugin mechanism, please refer to [go-plugger].

[cobra]: https://github.com/spf13/cobra
[go-plugger]: https://github.com/thediveo/go-plugger
*/
package cli
