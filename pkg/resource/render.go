package resource

import (
	"encoding/json"
	"strings"
)

// Tree renders r as nested maps following the category segments of each
// property: "Hosts/host_name" becomes {"Hosts": {"host_name": ...}}.
func (r Resource) Tree() map[string]interface{} {
	ret := map[string]interface{}{}

	for _, id := range r.PropertyIDs() {
		node := ret

		for _, segment := range strings.Split(id.Category(), Separator) {
			child, ok := node[segment].(map[string]interface{})
			if !ok {
				child = map[string]interface{}{}
				node[segment] = child
			}

			node = child
		}

		node[id.Name()] = r.properties[id].Interface()
	}

	return ret
}

func (r Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Tree())
}
