// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// ScriptModule is the name scripts require to reach the stack bindings.
const ScriptModule = "stack"

// ScriptTemplate is a Go text/template for scaffolding new Lua stack scripts.
const ScriptTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}

local {{ .Module }} = require("{{ .Module }}")

local s = {{ .Module }}.new()

for i = 1, 4 do
	s:push(i)
end

print("size", s:size(), "capacity", s:capacity())

while not s:empty() do
	print("pop", s:pop())
end

-- ex: ts=4 sw=4 et filetype=lua
`
