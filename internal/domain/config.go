package domain

// KeyPrefix namespaces every key the service writes to the database.
const KeyPrefix = "docintel:"
