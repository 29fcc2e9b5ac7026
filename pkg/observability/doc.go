/*
Package observability turns editor lifecycle events into Prometheus
metrics.

It builds on the same LifecycleHooks mechanism any consumer can use for
auditing: wire Metrics.Hooks into an Editor or session Manager and every
applied or rejected action is counted by kind.
*/
package observability
