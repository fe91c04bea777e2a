package api

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/openshift-assisted/cluster-resources/pkg/resource"
)

const (
	fieldsParam = "fields"
	wildcard    = "*"
)

// ParseQuery builds the request of a query string:
//
//	fields=Hosts/host_name,Hosts/cpu_count&Hosts/host_status=HEALTHY
//
// A field naming a category (Hosts or Hosts/*) wants every property under it.
// Every other parameter holding a PropertyID is an equality predicate on the
// textual form of the property. Predicate properties are always requested.
func ParseQuery(t resource.Type, query url.Values) (resource.Request, error) {
	schema, err := resource.SchemaOf(t)
	if err != nil {
		return resource.Request{}, err
	}

	ids := []resource.PropertyID{}
	categories := []string{}

	for _, field := range splitFields(query[fieldsParam]) {
		category, ok := asCategory(schema, field)
		if ok {
			categories = append(categories, category)

			continue
		}

		id, err := resource.ParsePropertyID(field)
		if err != nil {
			return resource.Request{}, err
		}

		ids = append(ids, id)
	}

	equals, err := parsePredicates(query)
	if err != nil {
		return resource.Request{}, err
	}

	if len(ids) > 0 || len(categories) > 0 {
		for id := range equals {
			ids = append(ids, id)
		}
	}

	ret := resource.NewReadRequest(ids...).WithCategories(categories...)

	if len(equals) > 0 {
		ret = ret.WithPredicate(equalPredicate(equals))
	}

	err = ret.Validate(schema)
	if err != nil {
		return resource.Request{}, err
	}

	for id := range equals {
		if !schema.Contains(id) {
			return resource.Request{}, resource.NewErrUnknownProperty(t, id)
		}
	}

	return ret, nil
}

func splitFields(values []string) []string {
	ret := []string{}

	for _, value := range values {
		for _, field := range strings.Split(value, ",") {
			field = strings.TrimSpace(field)
			if field != "" {
				ret = append(ret, field)
			}
		}
	}

	return ret
}

func asCategory(schema resource.Schema, field string) (string, bool) {
	category := strings.TrimSuffix(field, resource.Separator+wildcard)

	if category != field || schema.HasCategory(category) {
		return category, true
	}

	return "", false
}

func parsePredicates(query url.Values) (map[resource.PropertyID]string, error) {
	ret := map[resource.PropertyID]string{}

	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if key == fieldsParam || !strings.Contains(key, resource.Separator) {
			continue
		}

		id, err := resource.ParsePropertyID(key)
		if err != nil {
			return nil, err
		}

		values := query[key]
		if len(values) != 1 {
			return nil, fmt.Errorf("%w: %s expects one value, got %d", resource.ErrInvalidPropertyID, key, len(values))
		}

		ret[id] = values[0]
	}

	return ret, nil
}

// equalPredicate accepts the resources holding every expected value. A
// missing property never matches.
func equalPredicate(equals map[resource.PropertyID]string) resource.Predicate {
	return func(res resource.Resource) bool {
		for id, expected := range equals {
			value, ok := res.Property(id)
			if !ok || value.String() != expected {
				return false
			}
		}

		return true
	}
}
