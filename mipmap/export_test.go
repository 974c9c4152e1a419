package mipmap

var BoxSampler = boxSampler
