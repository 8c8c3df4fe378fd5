package metrics

const Namespace = "orders"
