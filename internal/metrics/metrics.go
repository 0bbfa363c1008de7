// Package metrics exposes Prometheus collectors for the node components.
package metrics

const namespace = "pqledger"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
