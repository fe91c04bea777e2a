package providers

import "strings"

// lookup walks the nested maps of a decoded JSON payload.
func lookup(payload map[string]interface{}, path ...string) (interface{}, bool) {
	var current interface{} = payload

	for _, key := range path {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}

		current, ok = node[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

func field(path ...string) func(map[string]interface{}) (interface{}, bool) {
	return func(payload map[string]interface{}) (interface{}, bool) {
		return lookup(payload, path...)
	}
}

func textAt(payload map[string]interface{}, path ...string) string {
	value, ok := lookup(payload, path...)
	if !ok {
		return ""
	}

	ret, _ := value.(string)

	return ret
}

// firstIPv4 returns the first address of the inventory interfaces, without
// its prefix length.
func firstIPv4(payload map[string]interface{}) string {
	interfaces, _ := lookup(payload, "host_inventory", "interfaces")

	list, ok := interfaces.([]interface{})
	if !ok {
		return ""
	}

	for _, item := range list {
		nic, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		addresses, ok := nic["ipv4_addresses"].([]interface{})
		if !ok {
			continue
		}

		for _, address := range addresses {
			text, ok := address.(string)
			if !ok || text == "" {
				continue
			}

			ip, _, _ := strings.Cut(text, "/")

			return ip
		}
	}

	return ""
}
