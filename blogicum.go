package blogicum

const Version = "v0.2.1"
