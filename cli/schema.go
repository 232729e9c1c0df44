// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

// Schema describes the fixed structure of a command's result data: named
// containers, each with an ordered list of field names. Commands declare
// their schema up front when registering, so output always renders in a
// stable shape regardless of which fields a particular run fills in.
type Schema struct {
	nodes []*SchemaNode
	index map[string]*SchemaNode
}

// NewSchema returns a new and still empty schema.
func NewSchema() *Schema {
	return &Schema{index: map[string]*SchemaNode{}}
}

// AddChild adds a container with the given field names to the schema and
// returns its node. Adding an already known container replaces its fields,
// keeping its position.
func (s *Schema) AddChild(name string, fields ...string) *SchemaNode {
	if node, ok := s.index[name]; ok {
		node.fields = fields
		return node
	}
	node := &SchemaNode{name: name, fields: fields}
	s.nodes = append(s.nodes, node)
	s.index[name] = node
	return node
}

// Child returns the container node with the given name.
func (s *Schema) Child(name string) (*SchemaNode, bool) {
	node, ok := s.index[name]
	return node, ok
}

// Children returns all container nodes in declaration order.
func (s *Schema) Children() []*SchemaNode { return s.nodes }

// SchemaNode is a single named container of a schema.
type SchemaNode struct {
	name   string
	fields []string
}

// Name returns the container's name.
func (n *SchemaNode) Name() string { return n.name }

// Fields returns the container's field names in declaration order.
func (n *SchemaNode) Fields() []string { return n.fields }

// Data is a single instantiation of a schema, filled with the values of one
// command run.
type Data struct {
	schema     *Schema
	containers []*Container
	index      map[string]*Container
	formatters map[string]Formatter
}

// NewData returns new and still empty result data following the given
// schema.
func NewData(schema *Schema) *Data {
	return &Data{
		schema:     schema,
		index:      map[string]*Container{},
		formatters: map[string]Formatter{},
	}
}

// Container returns the container with the given name, creating it on first
// use. The container starts out with the fields its schema node declares;
// containers without a schema node start out without any fields.
func (d *Data) Container(name string) *Container {
	if c, ok := d.index[name]; ok {
		return c
	}
	c := &Container{name: name, values: map[string]string{}}
	if d.schema != nil {
		if node, ok := d.schema.Child(name); ok {
			c.fields = append(c.fields, node.fields...)
		}
	}
	d.containers = append(d.containers, c)
	d.index[name] = c
	return c
}

// Containers returns all containers in order of first use.
func (d *Data) Containers() []*Container { return d.containers }

// SetFormatter sets the formatter rendering the container at the given path,
// where the path is the container's name with a leading “/”.
func (d *Data) SetFormatter(path string, f Formatter) {
	d.formatters[path] = f
}

// formatter returns the formatter for the named container, defaulting to the
// plain tag-value formatter.
func (d *Data) formatter(name string) Formatter {
	if f, ok := d.formatters["/"+name]; ok {
		return f
	}
	return TagValue()
}

// Container holds the field values of one schema container.
type Container struct {
	name   string
	fields []string // field rendering order.
	values map[string]string
}

// Name returns the container's name.
func (c *Container) Name() string { return c.name }

// Set sets a field to the given value. Setting a field the schema does not
// declare appends it to the rendering order.
func (c *Container) Set(field, value string) {
	if _, ok := c.values[field]; !ok {
		known := false
		for _, f := range c.fields {
			if f == field {
				known = true
				break
			}
		}
		if !known {
			c.fields = append(c.fields, field)
		}
	}
	c.values[field] = value
}

// Get returns the value of a field, together with whether the field has been
// set at all.
func (c *Container) Get(field string) (string, bool) {
	value, ok := c.values[field]
	return value, ok
}

// Fields returns the field names in rendering order, declared fields first.
func (c *Container) Fields() []string { return c.fields }
