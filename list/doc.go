/*
Package list exposes a shared to-do list as a Service that is safe for concurrent use.
The merge engine of package crdt does not synchronize access by itself, so the service
implementation serializes every operation behind one mutex. Logging and metrics are
added by wrapping a Service with NewLoggingService and NewMetricsService.
*/
package list
